package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the lending workflow, fine
// policies, and notification delivery.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Lending contains loan workflow related configurations
	Lending struct {
		// Period is how long a borrowed book may be kept before it is due
		Period time.Duration `env:"LENDING_PERIOD" env-default:"336h" yaml:"period"`
	} `yaml:"lending"`

	// Fine contains fine policy related configurations
	Fine struct {
		// Policy selects the fine policy variant: standard, discounted or waived
		Policy string `env:"FINE_POLICY" env-default:"standard" yaml:"policy"`
		// StandardRate is the per-day penalty charged by the standard policy
		StandardRate int `env:"FINE_STANDARD_RATE" env-default:"10" yaml:"standardRate"`
		// DiscountedRate is the per-day penalty charged by the discounted policy
		DiscountedRate int `env:"FINE_DISCOUNTED_RATE" env-default:"5" yaml:"discountedRate"`
	} `yaml:"fine"`

	// Notification contains notification delivery related configurations
	Notification struct {
		// Channel selects the delivery channel variant: console, email or sms
		Channel string `env:"NOTIFICATION_CHANNEL" env-default:"console" yaml:"channel"`
		// EmailFrom is the sender address used by the email channel
		EmailFrom string `env:"NOTIFICATION_EMAIL_FROM" env-default:"library@example.com" yaml:"emailFrom"`
	} `yaml:"notification"`
}

// Load receives the path for a yaml config file and returns a filled Config
// struct. When the file does not exist, configuration is read from the
// environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
