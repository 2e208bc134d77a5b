package config

import (
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	Secret     string `env:"SECRET,required"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`

	HTTPAddress    string   `env:"HTTP_ADDRESS" envDefault:"0.0.0.0:9090"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*"`

	BcryptHasherCost           int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	SessionTokenValidDuration  time.Duration `env:"SESSION_TOKEN_VALID_DURATION" envDefault:"1h"`
	PasswordResetValidDuration time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"1h"`

	AwsRegion                     string  `env:"AWS_REGION"`
	AwsAccessKey                  string  `env:"AWS_ACCESS_KEY"`
	AwsSecretKey                  string  `env:"AWS_SECRET_KEY"`
	AwsEmailSender                string  `env:"AWS_EMAIL_SENDER"`
	AwsEmailPasswordResetTemplate string  `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE"`
	PasswordResetBaseURL          url.URL `env:"PASSWORD_RESET_BASE_URL" envDefault:"http://localhost:3000/reset-password"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
