package plot

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level is a log severity. The default is LevelWarn: the plotting
// layer is quiet unless asked otherwise.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelTags = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

var logLevel int32 = int32(LevelWarn)

var stderr = log.New(os.Stderr, "wnutils: ", log.Ltime)

// SetLogLevel sets the global log level from a name ("debug", "info",
// "warn", "error"). Unknown names are ignored.
func SetLogLevel(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		atomic.StoreInt32(&logLevel, int32(LevelDebug))
	case "info":
		atomic.StoreInt32(&logLevel, int32(LevelInfo))
	case "warn", "warning":
		atomic.StoreInt32(&logLevel, int32(LevelWarn))
	case "error":
		atomic.StoreInt32(&logLevel, int32(LevelError))
	}
}

func logf(l Level, format string, args ...interface{}) {
	if Level(atomic.LoadInt32(&logLevel)) > l {
		return
	}
	if len(args) == 0 {
		stderr.Printf("[%s] %s", levelTags[l], format)
		return
	}
	stderr.Printf("[%s] %s", levelTags[l], fmt.Sprintf(format, args...))
}

// Debugf logs at debug level.
func Debugf(format string, args ...interface{}) { logf(LevelDebug, format, args...) }

// Infof logs at info level.
func Infof(format string, args ...interface{}) { logf(LevelInfo, format, args...) }

// Warnf logs at warn level.
func Warnf(format string, args ...interface{}) { logf(LevelWarn, format, args...) }

// Errorf logs at error level.
func Errorf(format string, args ...interface{}) { logf(LevelError, format, args...) }
