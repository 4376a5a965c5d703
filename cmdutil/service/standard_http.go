package service

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heroku/reqmetrics/cmdutil"
)

const shutdownTimeout = 5 * time.Second

// HTTP returns a server for h listening on $PORT.
func HTTP(l logrus.FieldLogger, h http.Handler) (cmdutil.Server, error) {
	var cfg platformConfig
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding platform config")
	}

	return standardServer(l, &http.Server{
		Handler:           h,
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}), nil
}

// listenHook allows tests to intercept the listener created for standard
// servers, e.g., to get the resolved address when the server's Addr is `:0`.
var listenHook chan net.Listener

// standardServer adapts an http.Server to a cmdutil.Server.
func standardServer(l logrus.FieldLogger, srv *http.Server) cmdutil.Server {
	return cmdutil.ServerFuncs{
		RunFunc: func() error {
			l.WithFields(logrus.Fields{
				"at":   "binding",
				"addr": srv.Addr,
			}).Info()

			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return errors.Wrap(err, "listening to tcp addr")
			}
			defer ln.Close()

			if listenHook != nil {
				listenHook <- ln
			}

			if err := srv.Serve(ln); err != http.ErrServerClosed {
				return err
			}
			return nil
		},
		StopFunc: func(error) { gracefulShutdown(l, srv) },
	}
}

func gracefulShutdown(l logrus.FieldLogger, s *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	l.WithField("at", "graceful-shutdown").Info()
	if err := s.Shutdown(ctx); err != nil {
		l.WithField("at", "graceful-shutdown").WithError(err).Warn()
		s.Close()
	}
}
