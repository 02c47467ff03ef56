package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override,
// e.g. CARDSPEND_DATA_FILE or CARDSPEND_LOG_LEVEL.
const EnvPrefix = "CARDSPEND"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"data" yaml:"data"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		DateFormat     string `mapstructure:"date_format" yaml:"date_format"`
		DateColumn     string `mapstructure:"date_column" yaml:"date_column"`
		CategoryColumn string `mapstructure:"category_column" yaml:"category_column"`
		AmountColumn   string `mapstructure:"amount_column" yaml:"amount_column"`
		AmountFormat   string `mapstructure:"amount_format" yaml:"amount_format"`
	} `mapstructure:"csv" yaml:"csv"`

	Chart struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Width   int    `mapstructure:"width" yaml:"width"`
		Color   string `mapstructure:"color" yaml:"color"`
	} `mapstructure:"chart" yaml:"chart"`

	Report struct {
		Precision int32 `mapstructure:"precision" yaml:"precision"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml, then CARDSPEND_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.card-spend")
	v.AddConfigPath(".card-spend")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.file", "credit_card_transaction_flow.csv")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.date_format", "DD-MM-YYYY")
	v.SetDefault("csv.date_column", "Date")
	v.SetDefault("csv.category_column", "Category")
	v.SetDefault("csv.amount_column", "Transaction Amount")
	v.SetDefault("csv.amount_format", "plain")

	v.SetDefault("chart.enabled", true)
	v.SetDefault("chart.width", 50)
	v.SetDefault("chart.color", "#89b4fa")

	v.SetDefault("report.precision", 2)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Data.File == "" {
		return fmt.Errorf("data.file must not be empty")
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.CSV.DateFormat == "" {
		return fmt.Errorf("csv.date_format must not be empty")
	}

	if config.CSV.DateColumn == "" || config.CSV.AmountColumn == "" {
		return fmt.Errorf("csv.date_column and csv.amount_column must not be empty")
	}

	if config.CSV.AmountFormat != "plain" && config.CSV.AmountFormat != "localized" {
		return fmt.Errorf("invalid csv.amount_format: %s (must be 'plain' or 'localized')", config.CSV.AmountFormat)
	}

	if config.Chart.Width < 10 || config.Chart.Width > 200 {
		return fmt.Errorf("chart.width must be between 10 and 200, got: %d", config.Chart.Width)
	}

	if config.Report.Precision < 0 || config.Report.Precision > 8 {
		return fmt.Errorf("report.precision must be between 0 and 8, got: %d", config.Report.Precision)
	}

	return nil
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	return []rune(c.CSV.Delimiter)[0]
}

// Default returns a configuration holding only the built-in defaults,
// ignoring config files and the environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return &config
}
