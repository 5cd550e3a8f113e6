package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/glowdesk/booking-service/pkg/types"
)

// Config конфигурация сервиса, читается из config.toml
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Redis          RedisConfig          `toml:"redis"`
	CatalogService CatalogServiceConfig `toml:"catalog_service"`
	Schedule       ScheduleConfig       `toml:"schedule"`
	Sessions       SessionsConfig       `toml:"sessions"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Enabled       bool   `toml:"enabled"`
	Addr          string `toml:"addr"`
	Password      string `toml:"password"`
	DB            int    `toml:"db"`
	CatalogTTLSec int    `toml:"catalog_ttl_seconds"`
}

type CatalogServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// ScheduleConfig рабочие часы салона и шаг сетки слотов
type ScheduleConfig struct {
	OpenTime        string `toml:"open_time"`
	CloseTime       string `toml:"close_time"`
	SlotStepMinutes int    `toml:"slot_step_minutes"`
}

type SessionsConfig struct {
	MaxIdleMinutes       int `toml:"max_idle_minutes"`
	SweepIntervalMinutes int `toml:"sweep_interval_minutes"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}

	open, err := types.NewTimeStringFromString(c.Schedule.OpenTime)
	if err != nil {
		return fmt.Errorf("schedule.open_time: %v", err)
	}
	close, err := types.NewTimeStringFromString(c.Schedule.CloseTime)
	if err != nil {
		return fmt.Errorf("schedule.close_time: %v", err)
	}
	if !open.IsBefore(close) {
		return fmt.Errorf("schedule.close_time must be after schedule.open_time")
	}
	if c.Schedule.SlotStepMinutes <= 0 {
		return fmt.Errorf("schedule.slot_step_minutes must be positive")
	}

	if c.CatalogService.URL == "" {
		return fmt.Errorf("catalog_service.url is required")
	}

	return nil
}

// OpenTimeString возвращает время открытия как TimeString.
// Валидность гарантирована Load.
func (c *Config) OpenTimeString() types.TimeString {
	return types.TimeString(c.Schedule.OpenTime)
}

// CloseTimeString возвращает время закрытия как TimeString
func (c *Config) CloseTimeString() types.TimeString {
	return types.TimeString(c.Schedule.CloseTime)
}
