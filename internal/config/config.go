package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the storefront backend.
// It is loaded once in main and passed down explicitly so handlers and
// stores never read ambient environment state.
type Config struct {
	RazorpayKeyID     string `mapstructure:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `mapstructure:"RAZORPAY_KEY_SECRET"`
	AnalyticsTable    string `mapstructure:"ANALYTICS_TABLE"`
	AnalyticsQueueURL string `mapstructure:"ANALYTICS_QUEUE_URL"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	AWSRegion         string `mapstructure:"AWS_REGION"`
	ServerAddr        string `mapstructure:"SERVER_ADDR"`
	RunLocal          bool   `mapstructure:"RUN_LOCAL"`
}

// HasPaymentCredentials reports whether both Razorpay credentials are set.
// The payment route fails closed when this is false; the rest of the API
// does not depend on them.
func (c Config) HasPaymentCredentials() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

// Load reads configuration from the environment with viper.
// Missing credentials are not an error here: their absence is handled
// per-request by the payment handler.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("AWS_REGION", "ap-south-1")
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("RUN_LOCAL", false)

	// bind the keys we unmarshal so AutomaticEnv picks them up
	for _, key := range []string{
		"RAZORPAY_KEY_ID",
		"RAZORPAY_KEY_SECRET",
		"ANALYTICS_TABLE",
		"ANALYTICS_QUEUE_URL",
		"DATABASE_URL",
		"AWS_REGION",
		"SERVER_ADDR",
		"RUN_LOCAL",
	} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
