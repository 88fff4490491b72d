package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file used when the config does not name one, relative to the working directory.
const DefaultPath = "logs/kernel.txt"

// Logger stores timestamped lines in memory, appends them to a file on disk when a path is set,
// and optionally echoes them to a writer (e.g. stderr for the CLI).
type Logger struct {
	mu    sync.Mutex
	path  string
	echo  io.Writer
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path and ensures its directory exists. An empty path keeps lines in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// SetEcho mirrors every logged line to w. Pass nil to stop echoing.
func (l *Logger) SetEcho(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.echo = w
}

// Log appends a line prefixed with [timestamp] using computer time.
func (l *Logger) Log(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line
	l.lines = append(l.lines, stamped)
	if l.echo != nil {
		_, _ = io.WriteString(l.echo, stamped+"\n")
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to a format specifier and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
