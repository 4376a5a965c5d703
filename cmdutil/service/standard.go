// Package service wires up the logging, configuration and lifecycle shared
// by every command in this module.
package service

import (
	"syscall"

	"github.com/joeshaw/envdecode"
	"github.com/oklog/run"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heroku/reqmetrics/cmdutil"
	"github.com/heroku/reqmetrics/cmdutil/signals"
	"github.com/heroku/reqmetrics/cmdutil/svclog"
)

// Standard is a standard service.
type Standard struct {
	g run.Group

	App    string
	Logger logrus.FieldLogger
}

// New returns a Standard service with logging and SIGINT/SIGTERM handling.
//
// appConfig, when non-nil, is decoded from the environment as well. Invalid
// configuration is returned as an error.
func New(appConfig interface{}) (*Standard, error) {
	var sc standardConfig
	if err := envdecode.Decode(&sc); err != nil {
		return nil, errors.Wrap(err, "decoding service config")
	}
	if appConfig != nil {
		if err := envdecode.Decode(appConfig); err != nil {
			return nil, errors.Wrap(err, "decoding app config")
		}
	}

	logger := svclog.NewLogger(sc.Logger)

	s := &Standard{
		App:    sc.Logger.AppName,
		Logger: logger,
	}
	s.Add(signals.NewServer(logger, syscall.SIGINT, syscall.SIGTERM))
	return s, nil
}

// Add adds cmdutil.Servers to be managed.
func (s *Standard) Add(svs ...cmdutil.Server) {
	for _, sv := range svs {
		s.g.Add(sv.Run, sv.Stop)
	}
}

// Run runs all added servers until the first one returns, then stops the
// rest. The error of the first server to return is returned.
func (s *Standard) Run() error {
	return s.g.Run()
}
