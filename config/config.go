package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Redis   RedisConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// BackendConfig points at the hosted content backend that owns all durable data.
type BackendConfig struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(viper.GetString("BACKEND_TIMEOUT"))
	if err != nil {
		timeout = 30 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Backend: BackendConfig{
			BaseURL:  viper.GetString("BACKEND_API_URL"),
			APIToken: viper.GetString("BACKEND_API_TOKEN"),
			Timeout:  timeout,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
	}

	return config, nil
}
