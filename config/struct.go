package config

import "time"

type Config struct {
	// General configuration
	Env string `yaml:"env" mapstructure:"env" validate:"required,oneof=dev prod"`
	Log Log    `yaml:"log" mapstructure:"log" validate:"required"`

	// Request defaults and CLI state
	HTTP    HTTP    `yaml:"http" mapstructure:"http" validate:"required"`
	History History `yaml:"history" mapstructure:"history" validate:"required"`
}

type Log struct {
	Level     string `yaml:"level" mapstructure:"level" validate:"required,oneof=debug info warn error"`
	AddSource bool   `yaml:"addSource" mapstructure:"addSource"`
}

type HTTP struct {
	// Timeout applies to every dispatched request; zero leaves the
	// transport default in place.
	Timeout   time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
	UserAgent string        `yaml:"userAgent" mapstructure:"userAgent"`
}

type History struct {
	// Path is the SQLite database recording completed requests.
	Path  string `yaml:"path" mapstructure:"path" validate:"required"`
	Limit int    `yaml:"limit" mapstructure:"limit" validate:"required,gte=1,lte=1000"`
}
