package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/arloliu/binstore/bucket"
	"github.com/arloliu/binstore/internal/logger"
	"github.com/arloliu/binstore/section"
)

func cmdQueryBucket(args []string) int {
	fs := flag.NewFlagSet("query-bucket", flag.ContinueOnError)
	keyStrs := fs.StringArrayP("key", "k", nil, "hashed key to look up (may be repeated)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	filenames := fs.Args()
	if len(filenames) == 0 {
		fmt.Fprintln(os.Stderr, "binstore: query-bucket requires at least one bucket file")
		return 1
	}

	hashes, err := parseHashes(*keyStrs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "binstore: invalid hash: %v\n", err)
		return 1
	}

	ret := 0
	for _, filename := range filenames {
		if err := queryOneBucket(filename, hashes); err != nil {
			fmt.Fprintf(os.Stderr, "binstore: %s: %v\n", filename, err)
			ret = 1
		}
	}

	return ret
}

func queryOneBucket(filename string, hashes []section.HashedKey) error {
	t := time.Now()
	b, err := bucket.Open(filename)
	if err != nil {
		return err
	}
	defer b.Close()
	logger.Debug("opened %s in %s", filename, time.Since(t))

	for _, hash := range hashes {
		t := time.Now()
		values, err := b.Get(hash)
		logger.Debug("searched key %d in %s", hash, time.Since(t))

		if errors.Is(err, bucket.ErrKeyNotFound) {
			fmt.Printf("%s: %d: not found\n", filename, hash)
			continue
		}
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d: %v\n", filename, hash, values)
	}

	return nil
}

func parseHashes(strs []string) ([]section.HashedKey, error) {
	hashes := make([]section.HashedKey, len(strs))
	for i, s := range strs {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		hashes[i] = section.HashedKey(v)
	}

	return hashes, nil
}
