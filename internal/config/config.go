package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Broker   BrokerConfig   `yaml:"broker"`
	Business BusinessConfig `yaml:"business"`
	History  HistoryConfig  `yaml:"history"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	Name         string `yaml:"name"`
	MaxOpenConns int    `yaml:"maxOpenConns"`
	MaxIdleConns int    `yaml:"maxIdleConns"`
	// Go duration string, e.g. "5m". Parsed where the pool is built.
	ConnMaxLifetime string `yaml:"connMaxLifetime"`
}

type BrokerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Exchange string `yaml:"exchange"`
}

// BusinessConfig carries shop-level settings. Timezone is an IANA zone
// name; every calendar bucket (month, weekday, day-of-month) is computed
// in that zone, not by offset arithmetic on UTC.
type BusinessConfig struct {
	Timezone string `yaml:"timezone"`
}

type HistoryConfig struct {
	DefaultPageSize int `yaml:"defaultPageSize"`
	MaxPageSize     int `yaml:"maxPageSize"`
	CacheCapacity   int `yaml:"cacheCapacity"`
	DayFetchLimit   int `yaml:"dayFetchLimit"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "signcraft")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "signcraft")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("BROKER_ENABLED", false)
	viper.SetDefault("BROKER_HOST", "localhost")
	viper.SetDefault("BROKER_PORT", 5672)
	viper.SetDefault("BROKER_USER", "guest")
	viper.SetDefault("BROKER_PASSWORD", "guest")
	viper.SetDefault("BROKER_EXCHANGE", "orders.events")
	viper.SetDefault("BUSINESS_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("HISTORY_DEFAULT_PAGE_SIZE", 15)
	viper.SetDefault("HISTORY_MAX_PAGE_SIZE", 100)
	viper.SetDefault("HISTORY_CACHE_CAPACITY", 8)
	viper.SetDefault("HISTORY_DAY_FETCH_LIMIT", 1000)
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: viper.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Broker: BrokerConfig{
			Enabled:  viper.GetBool("BROKER_ENABLED"),
			Host:     viper.GetString("BROKER_HOST"),
			Port:     viper.GetInt("BROKER_PORT"),
			User:     viper.GetString("BROKER_USER"),
			Password: viper.GetString("BROKER_PASSWORD"),
			Exchange: viper.GetString("BROKER_EXCHANGE"),
		},
		Business: BusinessConfig{
			Timezone: viper.GetString("BUSINESS_TIMEZONE"),
		},
		History: HistoryConfig{
			DefaultPageSize: viper.GetInt("HISTORY_DEFAULT_PAGE_SIZE"),
			MaxPageSize:     viper.GetInt("HISTORY_MAX_PAGE_SIZE"),
			CacheCapacity:   viper.GetInt("HISTORY_CACHE_CAPACITY"),
			DayFetchLimit:   viper.GetInt("HISTORY_DAY_FETCH_LIMIT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
