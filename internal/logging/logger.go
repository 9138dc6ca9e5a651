package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
	gormlogger "gorm.io/gorm/logger"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than holding on to L, so tests can swap it.
var L = clog.NewWithOptions(os.Stderr, clog.Options{ReportTimestamp: true})

// Setup points L at w with the given level. Unknown levels fall back to info.
func Setup(w io.Writer, level string) {
	L = clog.NewWithOptions(w, clog.Options{ReportTimestamp: true})
	L.SetLevel(ParseLevel(level))
}

func ParseLevel(level string) clog.Level {
	lvl, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return clog.InfoLevel
	}
	return lvl
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}

type gormWriter struct{}

func (gormWriter) Printf(format string, v ...interface{}) {
	L.With("component", "gorm").Debug(fmt.Sprintf(format, v...))
}

// Gorm returns a gorm logger that writes through L. SQL traces are only
// produced at debug level; otherwise slow queries and errors are reported.
func Gorm(level string) gormlogger.Interface {
	gormLevel := gormlogger.Warn
	if ParseLevel(level) == clog.DebugLevel {
		gormLevel = gormlogger.Info
	}

	return gormlogger.New(gormWriter{}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLevel,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
