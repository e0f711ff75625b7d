package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/arloliu/binstore/bucket"
	"github.com/arloliu/binstore/section"
)

func cmdDelete(args []string) int {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	valueStrs := fs.StringArrayP("values", "v", nil, "hi:lo value to remove (may be repeated)")
	outputs := fs.StringArrayP("output", "o", nil, "output file, one per input file, same order")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	inputs := fs.Args()
	if len(inputs) != len(*outputs) {
		fmt.Fprintln(os.Stderr, "binstore: number of input files does not match number of output files")
		return 1
	}

	values, err := parseValues(*valueStrs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "binstore: invalid value: %v\n", err)
		return 1
	}

	ret := 0
	for i, input := range inputs {
		if err := bucket.Delete(input, (*outputs)[i], values); err != nil {
			fmt.Fprintf(os.Stderr, "binstore: %s: %v\n", input, err)
			ret = 1
		}
	}

	return ret
}

// parseValues parses "hi:lo" pairs into 128-bit Values.
func parseValues(strs []string) ([]section.Value, error) {
	values := make([]section.Value, len(strs))
	for i, s := range strs {
		hiStr, loStr, ok := strings.Cut(s, ":")
		if !ok {
			return nil, fmt.Errorf("%q: want hi:lo", s)
		}

		hi, err := strconv.ParseUint(hiStr, 10, 64)
		if err != nil {
			return nil, err
		}
		lo, err := strconv.ParseUint(loStr, 10, 64)
		if err != nil {
			return nil, err
		}

		values[i] = section.NewValue(hi, lo)
	}

	return values, nil
}
