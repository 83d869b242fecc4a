package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorGray   = "\033[90m"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

var levelNames = [...]string{DEBUG: "DEBUG", INFO: "INFO", WARN: "WARN", ERROR: "ERROR"}

var levelColors = [...]string{DEBUG: ColorGray, INFO: ColorBlue, WARN: ColorYellow, ERROR: ColorRed}

func (l LogLevel) String() string {
	if l < DEBUG || l > ERROR {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel maps a level name such as "warn" or "DEBUG" to its LogLevel.
// The empty string is INFO.
func ParseLevel(name string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", name)
	}
}

// MultiWriter writes to every writer and stops at the first failure.
type MultiWriter struct {
	writers []io.Writer
}

func NewMultiWriter(writers ...io.Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

func (mw *MultiWriter) Write(p []byte) (n int, err error) {
	for _, w := range mw.writers {
		if _, err := w.Write(p); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (mw *MultiWriter) Add(writer io.Writer) {
	mw.writers = append(mw.writers, writer)
}

// output is where one level goes.
type output struct {
	writer io.Writer
	logger *log.Logger
}

func newOutput(w io.Writer) output {
	return output{writer: w, logger: log.New(w, "", 0)}
}

type ColoredLogger struct {
	mu       sync.RWMutex
	minLevel LogLevel
	color    bool
	outputs  [ERROR + 1]output
}

var globalLogger = newColoredLogger(os.Stderr)

func newColoredLogger(w io.Writer) *ColoredLogger {
	cl := &ColoredLogger{minLevel: INFO, color: true}
	for level := range cl.outputs {
		cl.outputs[level] = newOutput(w)
	}
	return cl
}

// SetLevel drops every message below level.
func SetLevel(level LogLevel) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.minLevel = level
}

// SetVerbose enables DEBUG output, or restores the INFO default.
func SetVerbose(verbose bool) {
	if verbose {
		SetLevel(DEBUG)
		return
	}
	SetLevel(INFO)
}

// SetColor toggles ANSI colors. Log files get plain output.
func SetColor(enabled bool) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.color = enabled
}

func SetWriterForAll(writer io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	for level := range globalLogger.outputs {
		globalLogger.outputs[level] = newOutput(writer)
	}
}

// AddWriter tees one level to writer in addition to its current output.
func AddWriter(level LogLevel, writer io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	current := globalLogger.outputs[level].writer
	if mw, ok := current.(*MultiWriter); ok {
		mw.Add(writer)
		return
	}
	globalLogger.outputs[level] = newOutput(NewMultiWriter(current, writer))
}

func AddWriterForAll(writer io.Writer) {
	for level := DEBUG; level <= ERROR; level++ {
		AddWriter(level, writer)
	}
}

func (cl *ColoredLogger) format(level LogLevel, message string, color bool) string {
	timestamp := time.Now().Format("06-01-02 15:04:05")
	if !color {
		return fmt.Sprintf("[%s] %-5s %s", timestamp, level, message)
	}
	return fmt.Sprintf("%s[%s]%s %s%-5s%s %s",
		ColorGray, timestamp, ColorReset,
		levelColors[level], level, ColorReset,
		message)
}

func (cl *ColoredLogger) log(level LogLevel, format string, args ...interface{}) {
	cl.mu.RLock()
	if level < cl.minLevel {
		cl.mu.RUnlock()
		return
	}
	out := cl.outputs[level].logger
	color := cl.color
	cl.mu.RUnlock()

	out.Println(cl.format(level, fmt.Sprintf(format, args...), color))
}

func Debug(format string, args ...interface{}) {
	globalLogger.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	globalLogger.log(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	globalLogger.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	globalLogger.log(ERROR, format, args...)
}
