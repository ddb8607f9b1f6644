package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`

	// AllowedOrigins restricts which browser origins may open the event
	// channel. "*" disables the check.
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`

	Room RoomConfig `mapstructure:"room" yaml:"room"`
}

// RoomConfig tunes room lifecycle behavior.
type RoomConfig struct {
	// CodeLength is the number of uppercase hex characters in a room code.
	// Codes are the only access control, so length is a security parameter.
	CodeLength int `mapstructure:"code_length" yaml:"code_length"`
	// Capacity caps members per room; zero means unlimited.
	Capacity int `mapstructure:"capacity" yaml:"capacity"`
	// ReapInterval is how often the reaper sweeps for abandoned rooms.
	ReapInterval time.Duration `mapstructure:"reap_interval" yaml:"reap_interval"`
	// InactivityTTL is how long an empty room survives without activity.
	InactivityTTL time.Duration `mapstructure:"inactivity_ttl" yaml:"inactivity_ttl"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":4000",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		AllowedOrigins:    []string{"http://localhost:3000"},
		Room: RoomConfig{
			CodeLength:    6,
			Capacity:      0,
			ReapInterval:  time.Minute,
			InactivityTTL: time.Hour,
		},
	}
}
