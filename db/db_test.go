package db

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/binstore/bucket"
	"github.com/arloliu/binstore/endian"
	"github.com/arloliu/binstore/section"
)

func createBucketWithTimestamp(t *testing.T, path string, ts time.Time, entries map[section.HashedKey][]section.Value) {
	t.Helper()
	require.NoError(t, bucket.Create(path, entries))

	// Create always stamps Timestamp with time.Now(); since Db keys buckets
	// by their header's own timestamp, rewrite the header in place to pin
	// a deterministic date for the test.
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	require.NoError(t, err)
	defer f.Close()

	buf := make([]byte, 8)
	engine := endian.GetLittleEndianEngine()
	engine.PutUint64(buf, uint64(ts.Unix()))
	_, err = f.WriteAt(buf, 8) // Timestamp field starts at byte offset 8
	require.NoError(t, err)
}

func TestOpen_SkipsCorruptFilesAndIndexesByDate(t *testing.T) {
	dir := t.TempDir()

	day1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 1, 3, 0, 0, 0, 0, time.Local)

	createBucketWithTimestamp(t, filepath.Join(dir, "a.bin"), day1, map[section.HashedKey][]section.Value{
		100: {section.NewValue(0, 1)},
	})
	createBucketWithTimestamp(t, filepath.Join(dir, "b.bin"), day2, map[section.HashedKey][]section.Value{
		100: {section.NewValue(0, 2)},
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "corrupt.bin"), []byte("not a bucket"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	database, err := Open(dir)
	require.NoError(t, err)
	defer database.Close()

	assert.Equal(t, 2, database.Len())
}

func TestQuery_RangeAcrossDates(t *testing.T) {
	dir := t.TempDir()

	day1 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 2, 2, 0, 0, 0, 0, time.Local)
	day3 := time.Date(2026, 2, 5, 0, 0, 0, 0, time.Local)

	createBucketWithTimestamp(t, filepath.Join(dir, "a.bin"), day1, map[section.HashedKey][]section.Value{
		42: {section.NewValue(0, 1)},
	})
	createBucketWithTimestamp(t, filepath.Join(dir, "b.bin"), day2, map[section.HashedKey][]section.Value{
		42: {section.NewValue(0, 2)},
	})
	createBucketWithTimestamp(t, filepath.Join(dir, "c.bin"), day3, map[section.HashedKey][]section.Value{
		42: {section.NewValue(0, 3)},
	})

	database, err := Open(dir)
	require.NoError(t, err)
	defer database.Close()

	require.Equal(t, 3, database.Len())

	values, err := database.Query(42, day1, day2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []section.Value{section.NewValue(0, 1), section.NewValue(0, 2)}, values)

	values, err = database.Query(42, day1, day3)
	require.NoError(t, err)
	assert.ElementsMatch(t, []section.Value{
		section.NewValue(0, 1), section.NewValue(0, 2), section.NewValue(0, 3),
	}, values)

	values, err = database.Query(999, day1, day3)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-02-05")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 2, 5, 0, 0, 0, 0, time.Local)))

	_, err = ParseDate("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestQuery_EmptyDb(t *testing.T) {
	dir := t.TempDir()

	database, err := Open(dir)
	require.NoError(t, err)
	defer database.Close()

	assert.Equal(t, 0, database.Len())

	values, err := database.Query(1, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, values)
}
