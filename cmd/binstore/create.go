package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/arloliu/binstore/bucket"
	"github.com/arloliu/binstore/section"
)

// cmdCreate builds a bucket file from a newline-delimited text fixture:
// each non-blank line is "key value...", a decimal hashed key followed by
// one or more hi:lo values, whitespace-separated. It exists because every
// other subcommand needs a bucket to operate on and the original CLI has no
// standalone "build one from a file" entry point.
func cmdCreate(args []string) int {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	output := fs.StringP("output-name", "o", "", "name of the output file")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	inputs := fs.Args()
	if *output == "" {
		fmt.Fprintln(os.Stderr, "binstore: create requires --output-name")
		return 1
	}
	if len(inputs) != 1 {
		fmt.Fprintln(os.Stderr, "binstore: create requires exactly one fixture file")
		return 1
	}

	entries, err := readFixture(inputs[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "binstore: %s: %v\n", inputs[0], err)
		return 1
	}

	if err := bucket.Create(*output, entries); err != nil {
		fmt.Fprintf(os.Stderr, "binstore: %v\n", err)
		return 1
	}

	return 0
}

// readFixture parses a newline-delimited "key value..." text file into the
// map bucket.Create wants. Blank lines are skipped.
func readFixture(path string) (map[section.HashedKey][]section.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries := make(map[section.HashedKey][]section.Value)

	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: want \"key value...\", got %q", lineNum, scanner.Text())
		}

		hashes, err := parseHashes(fields[:1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid key: %w", lineNum, err)
		}

		values, err := parseValues(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid value: %w", lineNum, err)
		}

		entries[hashes[0]] = append(entries[hashes[0]], values...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
