// Package logger provides centralized logging for the application.
// File: logger/logger.go
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

// ------------------- global loggers -------------------

// Level is a leveled view over the shared logrus logger. It keeps the
// Printf/Println call shape used throughout the handlers.
type Level struct {
	base  *logrus.Logger
	level logrus.Level
}

// Printf logs a formatted message at this level.
func (l *Level) Printf(format string, args ...interface{}) {
	l.base.Log(l.level, fmt.Sprintf(format, args...))
}

// Println logs its operands at this level.
func (l *Level) Println(args ...interface{}) {
	l.base.Logln(l.level, args...)
}

// four logger levels accessible throughout the application
var (
	Info  *Level
	Warn  *Level
	Error *Level
	Debug *Level
)

var base *logrus.Logger

// ------------------- logger initialization -------------------

// InitLogger creates or reinitializes the logging system. It:
// - Ensures the log directory exists.
// - Creates a timestamped log file in it.
// - Writes logs to both the file and stdout.
func InitLogger(dir string) error {
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	logFileName := filepath.Join(dir, time.Now().Format("2006-01-02_15-04-05")+".log")
	file, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec
	if err != nil {
		return err
	}

	configure(io.MultiWriter(os.Stdout, file))
	return nil
}

func configure(out io.Writer) {
	base = &logrus.Logger{
		Out:   out,
		Level: logrus.DebugLevel,
		Hooks: make(logrus.LevelHooks),
		Formatter: &easy.Formatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			LogFormat:       "%lvl%: %time% %msg%\n",
		},
	}
	Info = &Level{base: base, level: logrus.InfoLevel}
	Warn = &Level{base: base, level: logrus.WarnLevel}
	Error = &Level{base: base, level: logrus.ErrorLevel}
	Debug = &Level{base: base, level: logrus.DebugLevel}
}

// SetLogLevel drops debug output in production.
func SetLogLevel(env string) {
	if env == "production" {
		base.SetLevel(logrus.InfoLevel)
		return
	}
	base.SetLevel(logrus.DebugLevel)
}

// init gives every package usable loggers before main calls InitLogger,
// so tests never hit a nil logger.
func init() {
	configure(os.Stdout)
	if os.Getenv("LOG_DIR") == "" {
		return
	}
	if err := InitLogger(os.Getenv("LOG_DIR")); err != nil {
		log.Fatalf("Failed to initialise custom logger: %v", err)
	}
}
