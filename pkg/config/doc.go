// Package config loads environment-driven configuration into tagged structs.
//
// Load reads optional .env files with godotenv, then parses the process
// environment into the target with caarlos0/env. Variables already present in
// the environment win over .env values.
//
//	type Config struct {
//	    Env  string `env:"APP_ENV" envDefault:"development"`
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
package config
