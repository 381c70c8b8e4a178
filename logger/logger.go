package logger

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// journal priorities indexed by level; journald carries severity out of band
// so the sink drops the textual level prefix.
var journalPriorities = map[Level]journal.Priority{
	DEBUG: journal.PriDebug,
	INFO:  journal.PriInfo,
	WARN:  journal.PriWarning,
	ERROR: journal.PriErr,
	FATAL: journal.PriCrit,
}

// ParseLevel converts a configuration string into a Level. Unknown strings
// fall back to INFO with an error so callers can warn and continue.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG, nil
	case "info", "":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	case "fatal":
		return FATAL, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", s)
	}
}

type Logger struct {
	level         Level
	packageLevels map[string]Level
	journal       bool
	logger        *log.Logger
}

// Global logger instance
var defaultLogger *Logger

func init() {
	defaultLogger = New(INFO)
}

// New creates a new logger with the specified level
func New(level Level) *Logger {
	return &Logger{
		level:         level,
		packageLevels: map[string]Level{},
		logger:        log.New(os.Stderr, "", log.LstdFlags),
	}
}

// SetLevel sets the global logger level
func SetLevel(level Level) {
	defaultLogger.level = level
}

// SetPackageLevels sets per-package level overrides.
// Keys match the [component] prefix used in log messages (e.g. "mpris", "dbus", "cli").
func SetPackageLevels(levels map[string]Level) {
	defaultLogger.packageLevels = levels
}

// EnableJournal routes log output to the systemd journal when one is
// available, falling back to stderr otherwise. Returns whether the journal
// sink is active.
func EnableJournal() bool {
	defaultLogger.journal = journal.Enabled()
	return defaultLogger.journal
}

// extractComponent returns the component name from a "[component] ..." message, or "".
func extractComponent(msg string) string {
	if len(msg) < 3 || msg[0] != '[' {
		return ""
	}
	end := strings.IndexByte(msg[1:], ']')
	if end < 0 {
		return ""
	}
	return msg[1 : end+1]
}

// shouldLog checks if a message at this level should be logged,
// applying a package-specific override when the message carries a [component] prefix.
func (l *Logger) shouldLog(level Level, msg string) bool {
	if pkg := extractComponent(msg); pkg != "" {
		if pkgLevel, ok := l.packageLevels[pkg]; ok {
			return level >= pkgLevel
		}
	}
	return level >= l.level
}

// format creates a formatted message with level prefix
func (l *Logger) format(level Level, msg string) string {
	return fmt.Sprintf("[%s] %s", levelNames[level], msg)
}

// emit writes one formatted message to the active sink.
func (l *Logger) emit(level Level, msg string) {
	if l.journal {
		if err := journal.Send(msg, journalPriorities[level], nil); err == nil {
			return
		}
		// Journal went away mid-run; stderr still works.
	}
	l.logger.Println(l.format(level, msg))
}

// Debug logs a debug message
func Debug(msg string, args ...interface{}) {
	if defaultLogger.shouldLog(DEBUG, msg) {
		defaultLogger.emit(DEBUG, fmt.Sprintf(msg, args...))
	}
}

// Info logs an info message
func Info(msg string, args ...interface{}) {
	if defaultLogger.shouldLog(INFO, msg) {
		defaultLogger.emit(INFO, fmt.Sprintf(msg, args...))
	}
}

// Warn logs a warning message
func Warn(msg string, args ...interface{}) {
	if defaultLogger.shouldLog(WARN, msg) {
		defaultLogger.emit(WARN, fmt.Sprintf(msg, args...))
	}
}

// Error logs an error message
func Error(msg string, args ...interface{}) {
	if defaultLogger.shouldLog(ERROR, msg) {
		defaultLogger.emit(ERROR, fmt.Sprintf(msg, args...))
	}
}

// Fatal logs a fatal message and exits
func Fatal(msg string, args ...interface{}) {
	defaultLogger.emit(FATAL, fmt.Sprintf(msg, args...))
	os.Exit(1)
}
