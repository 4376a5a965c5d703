package httpmetrics

import (
	"unicode/utf8"

	"github.com/joeshaw/envdecode"
)

// DefaultNamespace prefixes the built-in metric names unless configured
// otherwise.
const DefaultNamespace = "rocket"

// Config is read from the environment when no Config is supplied with
// WithConfig.
type Config struct {
	Namespace string `env:"ROCKET_PROMETHEUS_NAMESPACE,default=rocket"`
}

// configFromEnv decodes Config. Decoding errors leave the defaults in place.
func configFromEnv() Config {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{Namespace: DefaultNamespace}
	}
	return cfg
}

// namespace returns the configured namespace, or DefaultNamespace when it is
// empty or not valid UTF-8.
func (c Config) namespace() string {
	if c.Namespace == "" || !utf8.ValidString(c.Namespace) {
		return DefaultNamespace
	}
	return c.Namespace
}
