package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// sink is the open log file; nil while logging is off. Pointer events
// arrive far faster than anything is read back, so every line goes
// straight to the file unbuffered.
var (
	mu   sync.Mutex
	sink io.WriteCloser
)

// DefaultPath returns where --debug writes when no -debug-log is given:
// the splitpane directory under the user cache dir.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "splitpane", "debug.log")
}

// Enable starts a fresh log at path, replacing any log already open.
func Enable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if sink != nil {
		_ = sink.Close()
	}
	sink = f
	writeLocked("splitpane debug log opened (pid %d)", os.Getpid())
	return nil
}

// Close stops logging. Calling it when logging is off does nothing.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if sink != nil {
		_ = sink.Close()
		sink = nil
	}
}

// IsEnabled reports whether a log is open.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return sink != nil
}

// Log appends one timestamped line. Callers prefix messages with their
// package ("drag: ", "app: ") so a gesture can be followed across layers.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	writeLocked(format, args...)
}

func writeLocked(format string, args ...any) {
	if sink == nil {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	_, _ = fmt.Fprintf(sink, "[%s] %s\n", ts, fmt.Sprintf(format, args...))
}

// Timed returns a func that logs how long name took when called:
//
//	defer debug.Timed("save widths")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}
	start := time.Now()
	return func() {
		Log("%s took %v", name, time.Since(start))
	}
}
