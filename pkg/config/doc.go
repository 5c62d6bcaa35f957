// Package config loads configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for parsing and github.com/joho/godotenv
// for .env files. Each configuration type is parsed once and cached for the
// lifetime of the process; ResetCache clears the cache in tests.
//
//	var cfg config.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Config is the formkit configuration (FORMKIT_* variables); any other struct
// with env tags can be loaded the same way.
package config
