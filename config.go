package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const defaultConfigName = "service_conf"

type Config struct {
	Port     int            `mapstructure:"port"`
	Prefork  bool           `mapstructure:"prefork"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Cors     CorsConfig     `mapstructure:"cors"`
}

type DatabaseConfig struct {
	Url                string `mapstructure:"url"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections"`
	MaxOpenConnections int    `mapstructure:"max_open_connections"`
	LogQueries         bool   `mapstructure:"log_queries"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CorsConfig struct {
	AllowOrigins string `mapstructure:"allow_origins"`
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("port", 3000)
	v.SetDefault("prefork", false)
	v.SetDefault("database.url", "sqlite:////tmp/test.db")
	v.SetDefault("database.max_idle_connections", 2)
	v.SetDefault("database.max_open_connections", 10)
	v.SetDefault("database.log_queries", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("cors.allow_origins", "*")
}

// LoadConfig reads, in increasing precedence: defaults, service_conf.json
// (or configFile when set), .env and the process environment.
func LoadConfig(configFile string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	v := viper.New()
	setConfigDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("json")
		v.AddConfigPath(".")
	}

	// database.url is read from DATABASE_URL, log.level from LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError

		if configFile != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
