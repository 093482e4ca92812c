package config

import (
	"fmt"
	"log/slog"

	"ctchen222/Tic-Tac-Toe-Solo/internal/validator"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `env:"TTT_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	Telemetry Telemetry `env-prefix:"OTEL_"`
}

type Telemetry struct {
	// Endpoint is the OTLP/gRPC collector address. Export is disabled when empty.
	Endpoint    string `env:"EXPORTER_OTLP_ENDPOINT" env-default:""`
	ServiceName string `env:"SERVICE_NAME" env-default:"tic-tac-toe" validate:"required"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}
	if err := validator.GetValidator().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// MustLoad is like Load but panics on failure.
func MustLoad() *Config {
	config, err := Load()
	if err != nil {
		panic(err)
	}
	return config
}

// SlogLevel maps LogLevel to a slog level.
func (that *Config) SlogLevel() slog.Level {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Enabled reports whether telemetry should be exported.
func (that *Telemetry) Enabled() bool {
	return that.Endpoint != ""
}
