// Package logger wraps logrus behind the package-level printf-style
// functions the rest of the module logs through.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	log     = logrus.New()
	logFile *os.File
	mu      sync.Mutex
	isInit  bool
)

// Init configures the process logger. When dir is non-empty, log lines go
// to dir/system.log in addition to stdout. An unrecognized level string
// falls back to INFO.
func Init(dir string, levelStr string) error {
	mu.Lock()
	defer mu.Unlock()

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		f, err := os.OpenFile(filepath.Join(dir, "system.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		logFile = f
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	} else {
		log.SetOutput(os.Stdout)
	}

	isInit = true
	return nil
}

// Shutdown closes the log file, if any. Logging after Shutdown still goes
// to stdout.
func Shutdown() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
		log.SetOutput(os.Stdout)
	}
	isInit = false
}

func IsInitialized() bool {
	mu.Lock()
	defer mu.Unlock()
	return isInit
}

func Info(format string, v ...interface{})  { log.Infof(format, v...) }
func Error(format string, v ...interface{}) { log.Errorf(format, v...) }
func Debug(format string, v ...interface{}) { log.Debugf(format, v...) }
