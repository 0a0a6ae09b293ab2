// Package config loads service configuration from an optional config.yaml in
// the working directory, with viper defaults for everything.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	NgramOrder int     `mapstructure:"NGRAM_ORDER"`
	CharMode   bool    `mapstructure:"CHAR_MODE"`
	Alpha      float64 `mapstructure:"ALPHA"`

	ModelDBPath string `mapstructure:"MODEL_DB_PATH"`
	CorpusPath  string `mapstructure:"CORPUS_PATH"`

	APIPort    int           `mapstructure:"API_PORT"`
	APITimeout time.Duration `mapstructure:"API_TIMEOUT"`

	// empty RedisAddr disables the custom dictionary
	RedisAddr string `mapstructure:"REDIS_ADDR"`
}

func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("NGRAM_ORDER", 3)
	viper.SetDefault("CHAR_MODE", false)
	viper.SetDefault("ALPHA", 0.95)
	viper.SetDefault("MODEL_DB_PATH", "model.db")
	viper.SetDefault("CORPUS_PATH", "")
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("REDIS_ADDR", "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error when reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error when unmarshalling config: %w", err)
	}
	if config.NgramOrder < 1 {
		return nil, errors.New("NGRAM_ORDER must be a positive integer")
	}
	if config.Alpha < 0 || config.Alpha > 1 {
		return nil, errors.New("ALPHA must be within [0, 1]")
	}
	return config, nil
}
