package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"codeberg.org/mutker/cpuctl/internal/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

var log = zerolog.Nop()

type LogLevel int8

const (
	TraceLevel LogLevel = iota - 1
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

type LogEvent struct {
	*zerolog.Event
}

func (e *LogEvent) Msg(msg string) {
	e.Event.Msg(msg)
}

func (e *LogEvent) Send() {
	e.Event.Send()
}

// Init initializes the logger based on the given configuration
func Init(level string, isService bool) {
	InitWithWriter(os.Stdout, level, isService)
}

// InitWithWriter is Init with an explicit output, used by tests.
func InitWithWriter(out io.Writer, level string, isService bool) {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}

	if isService {
		output.NoColor = true
		output.TimeFormat = ""
		output.FormatTimestamp = func(_ interface{}) string {
			return ""
		}
	}

	log = zerolog.New(output).With().Timestamp().Logger()

	SetLogLevel(ParseLevel(level))
}

// ParseLevel maps a configured level name to a LogLevel. Unknown names
// map to WarnLevel.
func ParseLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "trace":
		return TraceLevel
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "error":
		return ErrorLevel
	default:
		return WarnLevel
	}
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	zerolog.SetGlobalLevel(zerolog.Level(level))
}

// IsService checks if the application is running as a service
func IsService() bool {
	if _, err := os.Stdin.Stat(); err != nil {
		return true
	}
	if os.Getenv("SERVICE_NAME") != "" || os.Getenv("INVOCATION_ID") != "" {
		return true
	}
	if unix.Getppid() == 1 {
		return true
	}

	return unix.Getpgrp() == unix.Getpid()
}

// Trace logs a trace message
func Trace() *LogEvent {
	return &LogEvent{log.Trace()}
}

// Debug logs a debug message
func Debug() *LogEvent {
	return &LogEvent{log.Debug()}
}

// Info logs an info message
func Info() *LogEvent {
	return &LogEvent{log.Info()}
}

// Warn logs a warning message
func Warn() *LogEvent {
	return &LogEvent{log.Warn()}
}

// Error logs an error message
func Error() *LogEvent {
	return &LogEvent{log.Error()}
}

// ErrorWithCode logs an error message with a specific error code
func ErrorWithCode(err errors.Error) *LogEvent {
	return &LogEvent{log.Error().
		Str("error_code", err.Code().String()).
		Str("error_message", err.Error()).
		AnErr("error", err.Unwrap())}
}

type packageLogger struct {
	component string
}

// New returns a Logger that tags every event with the given component.
func New(component string) Logger {
	return &packageLogger{component: component}
}

func (l *packageLogger) tag(e *zerolog.Event) *LogEvent {
	return &LogEvent{e.Str("component", l.component)}
}

func (l *packageLogger) Trace() *LogEvent { return l.tag(log.Trace()) }
func (l *packageLogger) Debug() *LogEvent { return l.tag(log.Debug()) }
func (l *packageLogger) Info() *LogEvent  { return l.tag(log.Info()) }
func (l *packageLogger) Warn() *LogEvent  { return l.tag(log.Warn()) }
func (l *packageLogger) Error() *LogEvent { return l.tag(log.Error()) }

func (l *packageLogger) ErrorWithCode(err errors.Error) *LogEvent {
	return l.tag(log.Error().
		Str("error_code", err.Code().String()).
		Str("error_message", err.Error()).
		AnErr("error", err.Unwrap()))
}
