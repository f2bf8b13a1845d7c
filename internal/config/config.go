package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server        Server        `toml:"server"`
	Database      Database      `toml:"database"`
	Logs          Logs          `toml:"logs"`
	Metrics       Metrics       `toml:"metrics"`
	ClientService ClientService `toml:"clientservice"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	RunMigrations   bool   `toml:"run_migrations"`
}

// DSN собирает строку подключения
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ClientService настройки интеграции с сервисом клиентов
type ClientService struct {
	URL        string `toml:"url"`
	Timeout    int    `toml:"timeout"` // секунды
	MaxRetries int    `toml:"max_retries"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}
	return nil
}
