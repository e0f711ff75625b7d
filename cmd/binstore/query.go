package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/arloliu/binstore/db"
)

func cmdQuery(args []string) int {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	dbDir := fs.StringP("db-dir", "d", ".", "root of the directory where the buckets are stored")
	keyStrs := fs.StringArrayP("key", "k", nil, "hashed key to look up (may be repeated)")
	startDateStr := fs.StringP("start-date", "s", "", "format: 2006-01-02")
	endDateStr := fs.StringP("end-date", "e", "", "format: 2006-01-02")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	startDate, err := db.ParseDate(*startDateStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "binstore: cannot parse start date: %v\n", err)
		return 1
	}
	endDate, err := db.ParseDate(*endDateStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "binstore: cannot parse end date: %v\n", err)
		return 1
	}

	hashes, err := parseHashes(*keyStrs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "binstore: invalid hash: %v\n", err)
		return 1
	}

	database, err := db.Open(*dbDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "binstore: could not open database: %v\n", err)
		return 1
	}
	defer database.Close()

	ret := 0
	for _, hash := range hashes {
		values, err := database.Query(hash, startDate, endDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "binstore: %v\n", err)
			ret = 1
			continue
		}

		fmt.Printf("%d: %v\n", hash, values)
	}

	return ret
}
