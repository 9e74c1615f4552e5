// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tags). Each configuration type is parsed
// once per process and served from a cache afterwards; ResetCache clears it
// in tests.
//
//	type Config struct {
//		Env         string        `env:"APP_ENV" envDefault:"development"`
//		SuccessRate float64       `env:"SIGNUP_SUCCESS_RATE" envDefault:"0.7"`
//		SubmitDelay time.Duration `env:"SIGNUP_SUBMIT_DELAY" envDefault:"1500ms"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
