package config

import (
	"fmt"
	"os"

	"eventbook/pkg/logger"
)

type Config struct {
	LogLevel  string
	LogFormat string

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		LogLevel:  getEnvStr(EnvLogLevel, DefaultLogLevel),
		LogFormat: getEnvStr(EnvLogFormat, DefaultLogFormat),
	}
	cfg.Log = logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
	})

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	return cfg
}

func (cfg *Config) Validate() error {
	var errs []string

	switch cfg.LogLevel {
	case logger.DEBUG, logger.INFO, logger.WARN, logger.ERROR:
	default:
		errs = append(errs, fmt.Sprintf("LogLevel must be one of debug|info|warn|error, got: %s", cfg.LogLevel))
	}
	switch cfg.LogFormat {
	case logger.TEXT, logger.JSON:
	default:
		errs = append(errs, fmt.Sprintf("LogFormat must be one of text|json, got: %s", cfg.LogFormat))
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}
	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Debug("Configuration loaded successfully",
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
	)
}

func getEnvStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
