package logger

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Logger is the set of logging methods used across the pipeline.
type Logger interface {
	Debug(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Error(...interface{})
	Fatal(...interface{})
}

// LoggerImpl wraps a sirupsen/logrus entry tagged with the service name.
type LoggerImpl struct {
	Logger      *log.Entry
	Service     string
	LogLevelStr string
}

// NewLogger creates a logger writing to stderr at the supplied level.
// Invalid levels are a setup error and abort the process.
func NewLogger(serviceName string, level string) *LoggerImpl {
	log.SetOutput(os.Stderr)
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		fmt.Println("Error setting up logging: ", err)
		os.Exit(1)
	}
	log.SetLevel(logLevel)
	entry := log.WithFields(log.Fields{
		"service": serviceName,
	})
	return &LoggerImpl{Logger: entry, Service: serviceName, LogLevelStr: level}
}

func (l *LoggerImpl) Debug(message ...interface{}) {
	l.Logger.Debug(message...)
}

func (l *LoggerImpl) Info(message ...interface{}) {
	l.Logger.Info(message...)
}

func (l *LoggerImpl) Warn(message ...interface{}) {
	l.Logger.Warn(message...)
}

func (l *LoggerImpl) Error(message ...interface{}) {
	l.Logger.Error(message...)
}

func (l *LoggerImpl) Fatal(message ...interface{}) {
	l.Logger.Fatal(message...)
}

// SetOutput redirects log output, mainly for tests.
func (l *LoggerImpl) SetOutput(writer io.Writer) {
	log.SetOutput(writer)
}
