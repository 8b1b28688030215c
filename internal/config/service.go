package config

import "time"

type ServiceConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`

	// ProviderTimeout bounds every outbound payment provider call.
	ProviderTimeout time.Duration `yaml:"provider_timeout"`

	Stripe StripeConfig `yaml:"stripe"`
	Toss   TossConfig   `yaml:"toss"`
}

type StripeConfig struct {
	SecretKey     string `yaml:"secret_key"`
	WebhookSecret string `yaml:"webhook_secret"`
	SuccessURL    string `yaml:"success_url"`
	CancelURL     string `yaml:"cancel_url"`
	Currency      string `yaml:"currency"`
}

type TossConfig struct {
	SecretKey     string `yaml:"secret_key"`
	ClientKey     string `yaml:"client_key"`
	WebhookSecret string `yaml:"webhook_secret"`
}
