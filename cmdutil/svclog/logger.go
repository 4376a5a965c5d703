// Package svclog provides logging facilities for standard services.
package svclog

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Config for logger.
type Config struct {
	AppName  string `env:"APP_NAME,default=hello-metrics"`
	LogLevel string `env:"LOG_LEVEL,default=info"`
}

// NewLogger returns a new logger that includes the app key/value pair in
// each log line.
func NewLogger(cfg Config) logrus.FieldLogger {
	l := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		l.SetLevel(lvl)
	}
	return l.WithField("app", cfg.AppName)
}

// SampleLogger is a rate limited logger. Lines beyond the configured burst
// within a window are dropped.
type SampleLogger struct {
	logger  logrus.FieldLogger
	limiter *rate.Limiter
}

// NewSampleLogger creates a rate limited logger that allows logsBurstLimit
// lines per logBurstWindow.
func NewSampleLogger(logger logrus.FieldLogger, logsBurstLimit int, logBurstWindow time.Duration) *SampleLogger {
	return &SampleLogger{
		logger:  logger,
		limiter: rate.NewLimiter(rate.Every(logBurstWindow), logsBurstLimit),
	}
}

// Warn logs err with fields at warn level when allowed.
func (l *SampleLogger) Warn(err error, fields logrus.Fields) {
	if l.limiter.Allow() {
		l.logger.WithFields(fields).WithError(err).Warn()
	}
}
