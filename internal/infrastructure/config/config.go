package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Server holds the web server configuration.
type Server struct {
	Port     int           `envconfig:"TOOLSITES_PORT" default:"8080"`
	DBPath   string        `envconfig:"TOOLSITES_DB" default:"toolsites.db"`
	CacheTTL time.Duration `envconfig:"TOOLSITES_CACHE_TTL" default:"5m"`
}

// LoadServer loads server configuration from environment variables.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
