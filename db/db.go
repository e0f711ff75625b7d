// Package db provides a date-indexed view over a directory of bucket
// files, the way a production deployment partitions one bucket per day.
package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/arloliu/binstore/bucket"
	"github.com/arloliu/binstore/internal/logger"
	"github.com/arloliu/binstore/section"
)

// dateLayout is the YYYY-MM-DD format ParseDate accepts.
const dateLayout = "2006-01-02"

// ParseDate parses s as a YYYY-MM-DD date in the local zone, the format the
// query subcommand accepts on the command line. A malformed date wraps
// ErrInvalidDate so callers can distinguish it from other failures.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return t, nil
}

// entry pairs a bucket with the calendar day it was created on, derived
// from its own header timestamp rather than its filename.
type entry struct {
	date   time.Time
	bucket *bucket.Bucket
}

// Db is a read-only, date-ordered collection of bucket files under one
// root directory. Query answers a lookup across every bucket whose day
// falls in a date range.
type Db struct {
	root    string
	entries []entry
}

// Open scans every non-directory file directly under root and opens it as
// a bucket. A file that isn't a valid bucket (bad magic, unsupported
// version, truncated header) is logged at error level and skipped rather
// than aborting the scan — one corrupt file should not make the rest of
// the database unreachable.
//
// Buckets are keyed by the calendar day of their header's Timestamp, in
// the local zone. If two files land on the same day, the one encountered
// later in the directory listing wins and the earlier one is closed.
func Open(root string) (*Db, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	byDate := make(map[time.Time]*bucket.Bucket)
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}

		path := filepath.Join(root, de.Name())
		b, err := bucket.Open(path)
		if err != nil {
			logger.Error("could not load bucket from file %s: %v", path, err)
			continue
		}

		day := truncateToDay(b.CreatedAt())
		if existing, ok := byDate[day]; ok {
			existing.Close()
		}
		byDate[day] = b
	}

	entries := make([]entry, 0, len(byDate))
	for day, b := range byDate {
		entries = append(entries, entry{date: day, bucket: b})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].date.Before(entries[j].date) })

	return &Db{root: root, entries: entries}, nil
}

// Close closes every bucket the Db holds open.
func (db *Db) Close() error {
	var firstErr error
	for _, e := range db.entries {
		if err := e.bucket.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Len returns the number of buckets loaded.
func (db *Db) Len() int {
	return len(db.entries)
}

// Query returns every value stored under hash in any bucket whose day
// falls in [startDate, endDate], inclusive on both ends.
func (db *Db) Query(hash section.HashedKey, startDate, endDate time.Time) ([]section.Value, error) {
	start := truncateToDay(startDate)
	end := truncateToDay(endDate)

	lo := sort.Search(len(db.entries), func(i int) bool { return !db.entries[i].date.Before(start) })

	var values []section.Value
	for i := lo; i < len(db.entries) && !db.entries[i].date.After(end); i++ {
		logger.Debug("querying bucket for date %s with hash %d", db.entries[i].date.Format("2006-01-02"), hash)

		got, err := db.entries[i].bucket.Get(hash)
		if err != nil {
			if errors.Is(err, bucket.ErrKeyNotFound) {
				continue
			}

			return nil, err
		}
		values = append(values, got...)
	}

	return values, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
