package main

import (
	"time"

	"github.com/dmitrymomot/signupkit/pkg/httpserver"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"signupkit"`
	LogLevel string `env:"LOG_LEVEL"`

	Signup signupConfig
	HTTP   httpserver.Config
}

type signupConfig struct {
	SubmitDelay time.Duration `env:"SIGNUP_SUBMIT_DELAY" envDefault:"1500ms"`
	SuccessRate float64       `env:"SIGNUP_SUCCESS_RATE" envDefault:"0.7"`
	BcryptCost  int           `env:"SIGNUP_BCRYPT_COST" envDefault:"10"`

	SubmitBurst          int           `env:"SIGNUP_SUBMIT_BURST" envDefault:"5"`
	SubmitRefillInterval time.Duration `env:"SIGNUP_SUBMIT_REFILL_INTERVAL" envDefault:"1m"`
}
