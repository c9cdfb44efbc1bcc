package core

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// LogLevel mirrors the charmbracelet levels so callers can configure the
// engine logger without importing the logging library.
type LogLevel = log.Level

const (
	DebugLevel LogLevel = log.DebugLevel
	InfoLevel  LogLevel = log.InfoLevel
	WarnLevel  LogLevel = log.WarnLevel
	ErrorLevel LogLevel = log.ErrorLevel
	FatalLevel LogLevel = log.FatalLevel
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	once.Do(
		func() {
			singleton = &logger{newLogger(os.Stderr)}
		})
	return singleton
}

func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		CallerOffset:    1,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "Wireframe 📐 ",
	})
	l.SetLevel(log.InfoLevel)
	return l
}

// SetLogLevel changes the level of the engine logger.
func SetLogLevel(level LogLevel) {
	getLogger().SetLevel(level)
}

// SetLogOutput redirects the engine logger, mostly useful in tests.
func SetLogOutput(w io.Writer) {
	getLogger().SetOutput(w)
}

// ParseLogLevel accepts the usual names ("debug", "info", "warn", "error",
// "fatal").
func ParseLogLevel(s string) (LogLevel, error) {
	return log.ParseLevel(s)
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
