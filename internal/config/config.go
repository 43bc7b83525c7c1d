package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
// Значения читаются из TOML файла, затем перекрываются переменными окружения OUTREACH_*
type Config struct {
	Server   ServerConfig   `toml:"server" envPrefix:"OUTREACH_SERVER_"`
	Database DatabaseConfig `toml:"database" envPrefix:"OUTREACH_DB_"`
	Logs     LogsConfig     `toml:"logs" envPrefix:"OUTREACH_LOGS_"`
	Metrics  MetricsConfig  `toml:"metrics" envPrefix:"OUTREACH_METRICS_"`
	Rules    RulesConfig    `toml:"rules" envPrefix:"OUTREACH_RULES_"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" env:"READ_TIMEOUT"`         // секунды
	WriteTimeout    int `toml:"write_timeout" env:"WRITE_TIMEOUT"`       // секунды
	IdleTimeout     int `toml:"idle_timeout" env:"IDLE_TIMEOUT"`         // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host" env:"HOST"`
	Port            int    `toml:"port" env:"PORT"`
	User            string `toml:"user" env:"USER"`
	Password        string `toml:"password" env:"PASSWORD"`
	DBName          string `toml:"dbname" env:"NAME"`
	SSLMode         string `toml:"sslmode" env:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"CONN_MAX_LIFETIME"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file" env:"FILE"`
	Level string `toml:"level" env:"LEVEL"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"ENABLED"`
	Path        string `toml:"path" env:"PATH"`
	ServiceName string `toml:"service_name" env:"SERVICE_NAME"`
}

// RulesConfig глобальные параметры движка правил
type RulesConfig struct {
	MaxBatchSize           int     `toml:"max_batch_size" env:"MAX_BATCH_SIZE"`
	LargeBatchWarningRatio float64 `toml:"large_batch_warning_ratio" env:"LARGE_BATCH_WARNING_RATIO"`
	MessageDelaySeconds    int     `toml:"message_delay_seconds" env:"MESSAGE_DELAY_SECONDS"`
	TimeZone               string  `toml:"time_zone" env:"TIME_ZONE"` // IANA имя, пусто = локальный пояс
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location часовой пояс для вычисления рабочих часов
func (r RulesConfig) Location() (*time.Location, error) {
	if r.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(r.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: rules.time_zone: %v", ErrInvalidConfig, err)
	}
	return loc, nil
}

// CapacityLimits лимиты размера пакета
func (r RulesConfig) CapacityLimits() domain.CapacityLimits {
	return domain.NewCapacityLimits(r.MaxBatchSize, r.LargeBatchWarningRatio)
}

// MessageDelay интервал между соседними лидами в пакете
func (r RulesConfig) MessageDelay() time.Duration {
	return time.Duration(r.MessageDelaySeconds) * time.Second
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "outreach",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "outreach-service",
		},
		Rules: RulesConfig{
			MaxBatchSize:           domain.DefaultMaxBatchSize,
			LargeBatchWarningRatio: domain.DefaultLargeBatchWarningRatio,
			MessageDelaySeconds:    int(domain.DefaultMessageDelay / time.Second),
		},
	}
}

// Load загружает конфигурацию из файла и переменных окружения
// Отсутствующий файл не ошибка: используются значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: server.shutdown_timeout must be positive", ErrInvalidConfig)
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("%w: database pool sizes must not be negative", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	r := c.Rules
	if r.MaxBatchSize < domain.MinBatchSizeLimit || r.MaxBatchSize > domain.MaxBatchSizeLimit {
		return fmt.Errorf("%w: rules.max_batch_size must be in %d..%d, got %d",
			ErrInvalidConfig, domain.MinBatchSizeLimit, domain.MaxBatchSizeLimit, r.MaxBatchSize)
	}
	if r.LargeBatchWarningRatio < domain.MinWarningRatio || r.LargeBatchWarningRatio > domain.MaxWarningRatio {
		return fmt.Errorf("%w: rules.large_batch_warning_ratio must be in %.2f..%.2f, got %.2f",
			ErrInvalidConfig, domain.MinWarningRatio, domain.MaxWarningRatio, r.LargeBatchWarningRatio)
	}
	delay := r.MessageDelay()
	if delay < domain.MinMessageDelay || delay > domain.MaxMessageDelay {
		return fmt.Errorf("%w: rules.message_delay_seconds must be in %s..%s, got %s",
			ErrInvalidConfig, domain.MinMessageDelay, domain.MaxMessageDelay, delay)
	}
	if _, err := r.Location(); err != nil {
		return err
	}

	return nil
}
