// Command binstore operates on bucket files directly: dumping one as
// JSON, looking up keys in one or more buckets, merging or deleting from
// buckets, and querying a date-indexed directory of them.
package main

import (
	"fmt"
	"os"

	"github.com/arloliu/binstore/internal/logger"
)

func main() {
	logger.Setup(os.Stderr)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(0)
	}

	var ret int
	switch os.Args[1] {
	case "create":
		ret = cmdCreate(os.Args[2:])
	case "json-dump":
		ret = cmdJSONDump(os.Args[2:])
	case "query-bucket":
		ret = cmdQueryBucket(os.Args[2:])
	case "merge":
		ret = cmdMerge(os.Args[2:])
	case "delete":
		ret = cmdDelete(os.Args[2:])
	case "query":
		ret = cmdQuery(os.Args[2:])
	case "-h", "--help", "help":
		printUsage()
		ret = 0
	default:
		fmt.Fprintf(os.Stderr, "binstore: unknown subcommand %q\n", os.Args[1])
		printUsage()
		ret = 1
	}

	os.Exit(ret)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: binstore <subcommand> [flags]

Subcommands:
  create         build a bucket file from a newline-delimited key/value fixture
  json-dump      dump one or more bucket files as JSON
  query-bucket   look up keys directly in one or more bucket files
  merge          merge two bucket files into a new one
  delete         rewrite bucket files with a set of values removed
  query          look up keys across a date-indexed directory of buckets`)
}
