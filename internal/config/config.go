package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jask/pegwatch/internal/quote"
	"github.com/jask/pegwatch/internal/wheel"
)

// Config holds application configuration.
type Config struct {
	Quote     QuoteConfig     `mapstructure:"quote"`
	UI        UIConfig        `mapstructure:"ui"`
	Converter ConverterConfig `mapstructure:"converter"`
	Wheel     WheelConfig     `mapstructure:"wheel"`
	Log       LogConfig       `mapstructure:"log"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// QuoteConfig holds the upstream price endpoint settings.
type QuoteConfig struct {
	BaseURL      string        `mapstructure:"base_url" validate:"required,url"`
	APIKey       string        `mapstructure:"api_key"`
	UserAgent    string        `mapstructure:"user_agent"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"gt=0"`
	PollInterval time.Duration `mapstructure:"poll_interval" validate:"gt=0"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DarkMode bool   `mapstructure:"dark_mode"`
	Mode     string `mapstructure:"mode" validate:"oneof=tui plain"`
}

// ConverterConfig picks the coins preselected in the converter form.
type ConverterConfig struct {
	From string `mapstructure:"from" validate:"required"`
	To   string `mapstructure:"to" validate:"required"`
}

type WheelConfig struct {
	Segments     []string      `mapstructure:"segments" validate:"min=1,dive,required"`
	SpinDuration time.Duration `mapstructure:"spin_duration" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Path  string `mapstructure:"path"`
}

// MetricsConfig enables the prometheus listener when Addr is set.
type MetricsConfig struct {
	Addr string `mapstructure:"addr" validate:"omitempty,hostname_port"`
}

var validate = validator.New()

// Load reads configuration from file and env. Env var overrides use prefix PEGWATCH_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("quote.base_url", quote.DefaultBaseURL)
	v.SetDefault("quote.api_key", "")
	v.SetDefault("quote.user_agent", "pegwatch/1.0")
	v.SetDefault("quote.timeout", 10*time.Second)
	v.SetDefault("quote.poll_interval", quote.DefaultInterval)
	v.SetDefault("ui.dark_mode", false)
	v.SetDefault("ui.mode", "tui")
	v.SetDefault("converter.from", string(quote.USDC))
	v.SetDefault("converter.to", string(quote.USDT))
	v.SetDefault("wheel.segments", wheel.DefaultSegments)
	v.SetDefault("wheel.spin_duration", wheel.DefaultDuration)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "pegwatch", "pegwatch.log"))
	v.SetDefault("metrics.addr", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PEGWATCH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "pegwatch"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PEGWATCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit PEGWATCH_CONFIG must exist; the default location is optional
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks field constraints and that converter coins resolve.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := quote.ParseSymbol(c.Converter.From); err != nil {
		return fmt.Errorf("invalid config: converter.from: %w", err)
	}
	if _, err := quote.ParseSymbol(c.Converter.To); err != nil {
		return fmt.Errorf("invalid config: converter.to: %w", err)
	}
	return nil
}

// ConverterPair returns the resolved default converter coins.
func (c Config) ConverterPair() (from, to quote.Symbol) {
	from, err := quote.ParseSymbol(c.Converter.From)
	if err != nil {
		from = quote.USDC
	}
	to, err = quote.ParseSymbol(c.Converter.To)
	if err != nil {
		to = quote.USDT
	}
	return from, to
}
