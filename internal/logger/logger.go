// Package logger is the leveled logger used across binstore: the bucket
// writer/reader logs entry counts and versions at debug level, the db
// facade logs skipped buckets at error level, and cmd/binstore query-bucket
// logs lookup timings at debug level. The level starts at LevelInfo, and
// cmd/binstore has no flag that changes it, so debug output stays off
// there.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

type Level int

const (
	LevelError Level = iota
	LevelInfo
	LevelDebug
)

var (
	currentLevel = LevelInfo
	mu           sync.Mutex
)

// SetLevel sets the global log level.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = l
}

// Setup initializes the standard logger output.
func Setup(w io.Writer) {
	log.SetOutput(w)
	log.SetFlags(log.Ldate | log.Ltime)
}

// Debug logs fine-grained timing and offset information; off by default.
func Debug(format string, v ...interface{}) {
	if currentLevel >= LevelDebug {
		output("DEBUG: "+format, v...)
	}
}

// Info logs informative messages if the level allows.
func Info(format string, v ...interface{}) {
	if currentLevel >= LevelInfo {
		output("INFO: "+format, v...)
	}
}

// Error logs error messages. Always printed regardless of level.
func Error(format string, v ...interface{}) {
	output("ERROR: "+format, v...)
}

// Fatal logs independent of log level and exits.
func Fatal(format string, v ...interface{}) {
	output("FATAL: "+format, v...)
	os.Exit(1)
}

func output(format string, v ...interface{}) {
	// Calldepth 3 to skip this function, Debug/Info/Error/Fatal, and get to caller.
	_ = log.Output(3, fmt.Sprintf(format, v...))
}
