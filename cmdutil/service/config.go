package service

import "github.com/heroku/reqmetrics/cmdutil/svclog"

// standardConfig is decoded by New.
type standardConfig struct {
	Logger svclog.Config
}

// platformConfig is decoded by HTTP.
type platformConfig struct {
	// Port is the port to listen on.
	Port int `env:"PORT,default=5000"`
}
