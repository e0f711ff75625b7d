package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	flag "github.com/spf13/pflag"

	"github.com/arloliu/binstore/bucket"
	"github.com/arloliu/binstore/section"
)

// headerJSON and entryJSON render HashedKey/Value fields as strings, the
// way the reference implementation's LargeNumberAsStrings JSON formatter
// keeps 64- and 128-bit numbers exact for JSON consumers whose own number
// type can't hold them losslessly.
type headerJSON struct {
	Magic             uint32 `json:"magic"`
	Version           int    `json:"version"`
	CompressionType   string `json:"compression_type"`
	Timestamp         string `json:"timestamp"`
	SparseIndexOffset string `json:"sparse_index_offset"`
	DenseIndexOffset  string `json:"dense_index_offset"`
	DataOffset        string `json:"data_offset"`
	EntryCount        string `json:"entry_count"`
}

type entryJSON struct {
	Key            string   `json:"key"`
	AbsoluteOffset string   `json:"absolute_offset"`
	Values         []string `json:"values"`
}

func cmdJSONDump(args []string) int {
	fs := flag.NewFlagSet("json-dump", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	filenames := fs.Args()
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	ret := 0
	for _, filename := range filenames {
		if err := dumpBucket(out, filename); err != nil {
			fmt.Fprintf(os.Stderr, "binstore: %s: %v\n", filename, err)
			ret = 1
		}
	}

	return ret
}

func dumpBucket(out *bufio.Writer, filename string) error {
	b, err := bucket.Open(filename)
	if err != nil {
		return err
	}
	defer b.Close()

	enc := json.NewEncoder(out)

	h := b.Header()
	if err := enc.Encode(headerJSON{
		Magic:             h.Magic,
		Version:           int(h.Version),
		CompressionType:   h.CompressionType.String(),
		Timestamp:         fmt.Sprintf("%d", h.Timestamp),
		SparseIndexOffset: fmt.Sprintf("%d", h.SparseIndexOffset),
		DenseIndexOffset:  fmt.Sprintf("%d", h.DenseIndexOffset),
		DataOffset:        fmt.Sprintf("%d", h.DataOffset),
		EntryCount:        fmt.Sprintf("%d", h.EntryCount),
	}); err != nil {
		return err
	}

	entries, err := b.Entries()
	if err != nil {
		return err
	}

	for _, e := range entries {
		values, err := b.ValuesAt(e.Offset)
		if err != nil {
			return err
		}

		sort.Slice(values, func(i, j int) bool { return values[i].Less(values[j]) })

		strValues := make([]string, len(values))
		for i, v := range values {
			strValues[i] = valueString(v)
		}

		if err := enc.Encode(entryJSON{
			Key:            fmt.Sprintf("%d", e.Key),
			AbsoluteOffset: fmt.Sprintf("%d", h.DataOffset+e.Offset),
			Values:         strValues,
		}); err != nil {
			return err
		}
	}

	return nil
}

func valueString(v section.Value) string {
	return fmt.Sprintf("%d:%d", v.Hi, v.Lo)
}
