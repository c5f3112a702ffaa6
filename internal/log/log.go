// Package log provides structured logging for stdreg.
// It wraps tea.LogToFile with structured fields (level, category, timestamp)
// and conditionally enables logging via --debug flag or STDREG_DEBUG env.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wdgph/stdreg/internal/pubsub"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatConfig   Category = "config"   // Configuration loading/saving
	CatManifest Category = "manifest" // Registry manifest parsing
	CatRecords  Category = "records"  // Standard file loading and normalization
	CatCache    Category = "cache"    // Record set cache operations
	CatCatalog  Category = "catalog"  // Catalog queries: records, search, stats
	CatUI       Category = "ui"       // UI component updates
)

// maxRecent bounds the in-memory buffer consumed by the log overlay.
const maxRecent = 5000

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
	recent   []string               // Ring of recent entries for the log overlay
	broker   *pubsub.Broker[string] // Pub/sub for live log tailing
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init initializes the global logger.
// Returns a cleanup function to close the log file.
func Init(path string) (func(), error) {
	var initErr error
	once.Do(func() {
		defaultLogger, initErr = newLogger(path)
	})
	if initErr != nil {
		return nil, initErr
	}
	// Check if logger was initialized (handles case where once.Do already ran)
	if defaultLogger == nil {
		return nil, fmt.Errorf("logger initialization failed or already attempted")
	}
	return func() {
		if defaultLogger != nil && defaultLogger.file != nil {
			_ = defaultLogger.file.Close()
		}
	}, nil
}

// InitWithTeaLog uses tea.LogToFile for initialization.
func InitWithTeaLog(path string, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}

	defaultLogger = &Logger{
		file:     f,
		writer:   f,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](),
	}

	return func() { _ = f.Close() }, nil
}

func newLogger(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G304: path is user-controlled debug log path
	if err != nil {
		return nil, err
	}

	return &Logger{
		file:     f,
		writer:   f,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](),
	}, nil
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.enabled = enabled
		defaultLogger.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.minLevel = level
		defaultLogger.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

// formatEntry renders a single log line.
// Format: 2025-12-06T10:45:00 [ERROR] [manifest] message key=value key2=value2
func formatEntry(level Level, cat Category, msg string, fields ...any) string {
	timestamp := time.Now().Format("2006-01-02T15:04:05")
	entry := fmt.Sprintf("%s [%s] [%s] %s", timestamp, level, cat, msg)

	// Append fields (key=value pairs)
	for i := 0; i+1 < len(fields); i += 2 {
		entry += fmt.Sprintf(" %v=%v", fields[i], fields[i+1])
	}
	// Handle odd field count - append orphan key with no value
	if len(fields)%2 != 0 {
		entry += fmt.Sprintf(" %v=<missing>", fields[len(fields)-1])
	}
	return entry
}

func write(level Level, cat Category, msg string, fields ...any) {
	if defaultLogger == nil || !defaultLogger.enabled {
		return
	}
	if level < defaultLogger.minLevel {
		return
	}

	entry := formatEntry(level, cat, msg, fields...)

	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	if defaultLogger.writer != nil {
		_, _ = defaultLogger.writer.Write([]byte(entry + "\n"))
	}

	// Keep the entry around for the log overlay
	defaultLogger.recent = append(defaultLogger.recent, entry)
	if len(defaultLogger.recent) > maxRecent {
		defaultLogger.recent = defaultLogger.recent[len(defaultLogger.recent)-maxRecent:]
	}

	// Publish event to subscribers (non-blocking)
	if defaultLogger.broker != nil {
		defaultLogger.broker.Publish(pubsub.CreatedEvent, entry)
	}
}

// GetRecentLogs returns up to n of the most recent log entries, oldest first.
func GetRecentLogs(n int) []string {
	if defaultLogger == nil || n <= 0 {
		return nil
	}
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	recent := defaultLogger.recent
	if len(recent) > n {
		recent = recent[len(recent)-n:]
	}
	out := make([]string, len(recent))
	copy(out, recent)
	return out
}

// ClearBuffer discards all buffered log entries.
// The log file itself is left untouched.
func ClearBuffer() {
	if defaultLogger == nil {
		return
	}
	defaultLogger.mu.Lock()
	defaultLogger.recent = nil
	defaultLogger.mu.Unlock()
}

// LogEvent is a pubsub event containing a log entry.
type LogEvent = pubsub.Event[string]

// LogListener wraps a continuous listener for log events.
type LogListener = pubsub.ContinuousListener[string]

// NewListener creates a new log event listener.
// The listener is automatically cleaned up when the context is cancelled.
func NewListener(ctx context.Context) *LogListener {
	if defaultLogger == nil || defaultLogger.broker == nil {
		return nil
	}
	return pubsub.NewContinuousListener(ctx, defaultLogger.broker)
}
