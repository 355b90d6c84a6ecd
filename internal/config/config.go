package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBDriver      string `yaml:"db_driver"`
	DBDSN         string `yaml:"db_dsn"`
	ServerPort    string `yaml:"server_port"`
	SessionSecret string `yaml:"session_secret"`
	ModelPath     string `yaml:"model_path"`
	EncoderPath   string `yaml:"encoder_path"`
	LogLevel      string `yaml:"log_level"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Load собирает конфиг: config.yaml (если есть), затем .env и переменные окружения поверх.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	path := "config.yaml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		path = p
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	override(&cfg.DBDriver, "DB_DRIVER")
	override(&cfg.DBDSN, "DB_DSN")
	override(&cfg.ServerPort, "SERVER_PORT")
	override(&cfg.SessionSecret, "SESSION_SECRET")
	override(&cfg.ModelPath, "MODEL_PATH")
	override(&cfg.EncoderPath, "ENCODER_PATH")
	override(&cfg.LogLevel, "LOG_LEVEL")

	if cfg.DBDriver == "" {
		cfg.DBDriver = DriverSQLite
	}
	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBDSN == "" {
			cfg.DBDSN = "database.db"
		}
	case DriverPostgres:
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("DB_DSN is not set")
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "5000"
	}
	if cfg.ModelPath == "" {
		cfg.ModelPath = "diabetes-prediction-model.json"
	}
	if cfg.EncoderPath == "" {
		cfg.EncoderPath = "label_encoder.json"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// пустой SESSION_SECRET допустим: ключ сгенерируется при старте
	return cfg, nil
}

func override(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
