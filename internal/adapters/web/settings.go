package web

import (
	"net"
	"strconv"
	"time"

	"nira/internal/config"
)

// Settings configures the live-reload HTTP server
type Settings struct {
	Host         string
	Port         int
	MaxBodyBytes int64
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultSettings returns settings for the default local address
func DefaultSettings() Settings {
	return Settings{
		Host:         config.DefaultHost,
		Port:         config.DefaultPort,
		MaxBodyBytes: 4 << 20,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// SettingsFromConfig applies the server section of the config over the defaults
func SettingsFromConfig(cfg config.ServerConfig) Settings {
	s := DefaultSettings()
	if cfg.Host != "" {
		s.Host = cfg.Host
	}
	s.Port = cfg.Port
	return s
}

// Address returns host:port
func (s Settings) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// URL returns the base URL for the configured address
func (s Settings) URL() string {
	return "http://" + s.Address()
}
