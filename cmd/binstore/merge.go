package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/arloliu/binstore/bucket"
)

func cmdMerge(args []string) int {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	output := fs.StringP("output-name", "o", "", "name of the output file")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	filenames := fs.Args()
	if *output == "" {
		fmt.Fprintln(os.Stderr, "binstore: merge requires --output-name")
		return 1
	}
	if len(filenames) != 2 {
		fmt.Fprintln(os.Stderr, "binstore: merge requires exactly two input files")
		return 1
	}

	if err := bucket.Merge(filenames[0], filenames[1], *output); err != nil {
		fmt.Fprintf(os.Stderr, "binstore: %v\n", err)
		return 1
	}

	return 0
}
