// Package simplelogger is a minimal printf-style logger for diagnostics that must not affect results, such as the report written just before an invariant
// violation panics.
package simplelogger

import (
	"bytes"
	"fmt"
	"os"
	"sync"
)

// LogFileEnv names the environment variable holding the log file path.
const LogFileEnv = "DIFFCORE_LOG_FILE"

var mu sync.Mutex

// Enabled reports whether LogFileEnv is set. Callers may use it to skip building expensive log arguments.
func Enabled() bool {
	return os.Getenv(LogFileEnv) != ""
}

// Log appends formatted output, newline-terminated, to the file named by LogFileEnv.
//
// If LogFileEnv is unset/empty or the path can't be opened as a file, Log is a no-op.
func Log(format string, args ...any) {
	write("", format, args...)
}

// Logger prefixes every message with a component name.
type Logger struct {
	prefix string
}

// New returns a Logger whose messages start with "component: ".
func New(component string) Logger {
	return Logger{prefix: component + ": "}
}

// Log is like the package-level Log, with l's prefix.
func (l Logger) Log(format string, args ...any) {
	write(l.prefix, format, args...)
}

func write(prefix string, format string, args ...any) {
	path := os.Getenv(LogFileEnv)
	if path == "" {
		return
	}

	// Serialize open/write/close to reduce interleaving within a single process.
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	var b bytes.Buffer
	b.WriteString(prefix)
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Len() == 0 || b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}
	_, _ = f.Write(b.Bytes())
}
