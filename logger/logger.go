// Package logger is the process-wide leveled logger backed by op/go-logging.
package logger

import (
	"os"
	"strings"

	"github.com/op/go-logging"
)

const (
	module     = "food4u"
	timeFormat = "2006/01/02 15:04:05"
)

var logger = logging.MustGetLogger(module)

func init() {
	InitLogger(logging.INFO)
}

// InitLogger sends log records at or above level to stderr.
func InitLogger(level logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(`%{time:` + timeFormat + `} %{level:.4s} - %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveled.SetLevel(level, module)
	logger.SetBackend(leveled)
}

// ParseLevel maps a config string to a logging level, defaulting to INFO.
func ParseLevel(s string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logging.DEBUG
	case "notice":
		return logging.NOTICE
	case "warn", "warning":
		return logging.WARNING
	case "error":
		return logging.ERROR
	default:
		return logging.INFO
	}
}

func Debug(args ...any) {
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warning(args ...any) {
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

// Fatalf logs at CRITICAL and exits the process.
func Fatalf(format string, args ...any) {
	logger.Fatalf(format, args...)
}
