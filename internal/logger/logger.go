package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Level orders log severities; lines below the logger's minimum are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARNING",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps a level name (case-insensitive, WARN accepted) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "", "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger writes KEY=value lines, one per event, so register activity can be
// grepped apart from the operator's console.
type Logger struct {
	writer io.Writer
	min    Level
}

// New creates a logger writing to stderr at INFO level
func New() *Logger {
	return &Logger{
		writer: os.Stderr,
		min:    LevelInfo,
	}
}

// NewWithWriter creates a logger with a custom writer and minimum level
func NewWithWriter(w io.Writer, min Level) *Logger {
	return &Logger{
		writer: w,
		min:    min,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWithWriter(io.Discard, LevelError+1)
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

func (l *Logger) log(level Level, msg string, fields ...Field) {
	if level < l.min {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "LEVEL=%s MESSAGE=%s", level, msg)
	for _, field := range fields {
		fmt.Fprintf(&b, " %s=%v", field.Key, field.Value)
	}
	_, _ = fmt.Fprintln(l.writer, b.String())
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// F creates a new field (shorthand)
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Common field constructors
func Action(value string) Field   { return F("ACTION", value) }
func Status(value string) Field   { return F("STATUS", value) }
func Room(value string) Field     { return F("ROOM", value) }
func Customer(value string) Field { return F("CUSTOMER", value) }
func Count(value int) Field       { return F("COUNT", value) }
func Days(value int) Field        { return F("DAYS", value) }
func Total(value int) Field       { return F("TOTAL", value) }
func Path(value string) Field     { return F("PATH", value) }
func Bytes(value int) Field       { return F("BYTES", value) }
func Choice(value string) Field   { return F("CHOICE", value) }
func Error(value error) Field     { return F("ERROR", value) }
