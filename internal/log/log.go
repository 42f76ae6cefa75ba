package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// LoggerConfigurator is a data structure used to configure a CoreLogger.
type LoggerConfigurator struct {
	Writer            io.Writer
	Level             string
	TimeFormatTempl   string
	CallerFormatTempl string
}

// NewLogConfigurator creates a new LoggerConfigurator for the given level,
// writing to stderr so program output on stdout stays clean.
func NewLogConfigurator(level string) *LoggerConfigurator {
	return &LoggerConfigurator{
		Writer:          os.Stderr,
		Level:           level,
		TimeFormatTempl: time.RFC3339 + " ",
	}
}

// Output returns the log writer instance.
func (config *LoggerConfigurator) Output() io.Writer {
	return config.Writer
}

// LogLevel returns the log level.
func (config *LoggerConfigurator) LogLevel() string {
	return config.Level
}

// TimestampFormat returns the log timestamp format.
func (config *LoggerConfigurator) TimestampFormat() string {
	return config.TimeFormatTempl
}

// CallerFormat returns the log caller format template.
func (config *LoggerConfigurator) CallerFormat() string {
	return config.CallerFormatTempl
}

// Level is the logging level.
type Level int

const (
	// DEBUG level for developer information
	DEBUG Level = iota - 1
	// INFO level for state and status
	INFO
	// WARN level for possible issues
	WARN
	// ERROR level for errors
	ERROR
	// FATAL level for unrecoverable errors that stop the process.
	FATAL
)

// String returns a five character upper case representation of the log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO "
	case WARN:
		return "WARN "
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return fmt.Sprintf("Level(%d)", l)
	}
}

// UnmarshalText converts a slice of characters to a Level
func (l *Level) UnmarshalText(text []byte) error {
	switch strings.TrimSpace(string(bytes.ToUpper(text))) {
	case "DEBUG":
		*l = DEBUG
	case "INFO", "":
		*l = INFO
	case "WARN":
		*l = WARN
	case "ERROR":
		*l = ERROR
	case "FATAL":
		*l = FATAL
	default:
		return fmt.Errorf("unknown log level %q", text)
	}
	return nil
}

// Configurator has methods to fetch the logger configuration values.
type Configurator interface {
	LogLevel() string
	Output() io.Writer
	TimestampFormat() string
	CallerFormat() string
}

// CoreLogger implements logging
type CoreLogger struct {
	level           Level
	writer          io.Writer
	timestampFormat string
	callerFormat    string
}

var defaultLogger *CoreLogger

// TerminateFunc defines logic for termination of fatal log messages.
var TerminateFunc = terminate

// New creates a new logger using default settings.
// Standard error, INFO level, timestamping and file:line reporting
func New() *CoreLogger {
	return &CoreLogger{
		level:           INFO,
		writer:          os.Stderr,
		timestampFormat: "01-02 15:04:05.000 ",
		callerFormat:    " %20.20s:%03d - ",
	}
}

// GetDefaultLogger returns the default logger implementation.
func GetDefaultLogger() *CoreLogger {
	if defaultLogger == nil {
		defaultLogger = New()
	}
	return defaultLogger
}

// Perform the actual logging routine
func (c *CoreLogger) log(level Level, format string, args []interface{}) {
	if level < c.level {
		return
	}

	_, file, line, ok := runtime.Caller(3)
	if !ok {
		file = "???"
		line = 0
	} else {
		file = filepath.Base(file)
	}

	var msg string
	if format == "" {
		msg = fmt.Sprint(args...)
	} else {
		msg = fmt.Sprintf(format, args...)
	}

	var b strings.Builder
	b.WriteString(time.Now().Format(c.timestampFormat))
	b.WriteString(level.String())
	_, _ = fmt.Fprintf(&b, c.callerFormat, file, line)
	b.WriteString(msg)
	b.WriteString("\n")
	_, _ = io.WriteString(c.writer, b.String())
}

// logf keeps the call depth the same for instance and package functions.
func (c *CoreLogger) logf(level Level, format string, args ...interface{}) {
	c.log(level, format, args)
}

// Replaceable termination logic for testing fatal errors
func terminate() {
	os.Exit(1)
}

// Setup is called to configure a logger. If it is not called, the logger
// writes INFO and above to standard error.
func (c *CoreLogger) Setup(config Configurator) error {
	var level Level
	if err := level.UnmarshalText([]byte(config.LogLevel())); err != nil {
		return err
	}
	c.level = level
	if writer := config.Output(); writer != nil {
		c.writer = writer
	}
	if f := config.TimestampFormat(); f != "" {
		c.timestampFormat = f
	}
	if f := config.CallerFormat(); f != "" {
		c.callerFormat = f
	}
	return nil
}

// SetOutput sets the io.Writer to which all future log messages will be written.
func (c *CoreLogger) SetOutput(w io.Writer) {
	c.writer = w
}

// SetLogLevel sets a filter on the minimum level of messages that will be logged.
func (c *CoreLogger) SetLogLevel(level Level) {
	c.level = level
}

// GetLogLevel gets the current log level.
func (c *CoreLogger) GetLogLevel() Level {
	return c.level
}

func (c *CoreLogger) Debugf(format string, args ...interface{}) {
	c.logf(DEBUG, format, args...)
}
func (c *CoreLogger) Infof(format string, args ...interface{}) {
	c.logf(INFO, format, args...)
}
func (c *CoreLogger) Warnf(format string, args ...interface{}) {
	c.logf(WARN, format, args...)
}
func (c *CoreLogger) Errorf(format string, args ...interface{}) {
	c.logf(ERROR, format, args...)
}

// Fatalf logs a formatted message at FATAL level and then terminates.
func (c *CoreLogger) Fatalf(format string, args ...interface{}) {
	c.logf(FATAL, format, args...)
	TerminateFunc()
}

// *************************************************************
// Package level functions work on the default logger, so any code
// can log without holding a logger instance.

// Setup configures the default logger.
func Setup(config Configurator) error {
	return GetDefaultLogger().Setup(config)
}

// SetOutput sets the writer of the default logger.
func SetOutput(w io.Writer) {
	GetDefaultLogger().writer = w
}

// SetLogLevel sets the level of the default logger.
func SetLogLevel(level Level) {
	GetDefaultLogger().level = level
}

func Debugf(format string, args ...interface{}) {
	GetDefaultLogger().logf(DEBUG, format, args...)
}
func Infof(format string, args ...interface{}) {
	GetDefaultLogger().logf(INFO, format, args...)
}
func Warnf(format string, args ...interface{}) {
	GetDefaultLogger().logf(WARN, format, args...)
}
func Errorf(format string, args ...interface{}) {
	GetDefaultLogger().logf(ERROR, format, args...)
}

// Fatal logs the arguments at FATAL level and then terminates.
func Fatal(args ...interface{}) {
	GetDefaultLogger().logf(FATAL, "", args...)
	TerminateFunc()
}
