package config

import (
	"time"

	"github.com/dmitrymomot/formkit/pkg/merge"
)

// Config holds the settings shared by the formkit commands.
type Config struct {
	// Language of rendered messages when the request does not choose one.
	Language  string `env:"FORMKIT_LANG" envDefault:"en"`
	LogLevel  string `env:"FORMKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FORMKIT_LOG_FORMAT" envDefault:"text"`

	Addr            string        `env:"FORMKIT_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"FORMKIT_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// RateBurst caps validation requests per client; zero disables throttling.
	RateBurst    int           `env:"FORMKIT_RATE_BURST" envDefault:"0"`
	RateInterval time.Duration `env:"FORMKIT_RATE_INTERVAL" envDefault:"1s"`

	// PhoneRegion is the default region for numbers without a country code.
	PhoneRegion string `env:"FORMKIT_PHONE_REGION" envDefault:"FR"`
	// Schema is the path of the form schema file.
	Schema        string         `env:"FORMKIT_SCHEMA"`
	ArrayStrategy merge.Strategy `env:"FORMKIT_ARRAY_STRATEGY" envDefault:"replace"`
}
