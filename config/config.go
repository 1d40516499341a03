package config

import (
	"sync"

	"github.com/spf13/viper"
)

const (
	defaultServerAddress = ":8080"
	defaultDatabaseDSN   = ""
	defaultRedisAddr     = "localhost:6379"
	defaultShippingAddr  = ":8181"
	defaultLogLevel      = "debug"
	defaultPollInterval  = "30s"
)

type Config struct {
	ServerAddr      string
	DatabaseDSN     string
	RedisAddr       string
	ShippingAPIAddr string
	TokenKey        string
	LogLevel        string
	PollInterval    string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. Values come from environment variables with
// defaults applied; it is resolved only once.
func New() (*Config, error) {
	once.Do(func() {
		v := viper.New()
		v.AutomaticEnv()

		v.SetDefault("RUN_ADDRESS", defaultServerAddress)
		v.SetDefault("DATABASE_URI", defaultDatabaseDSN)
		v.SetDefault("REDIS_ADDR", defaultRedisAddr)
		v.SetDefault("SHIPPING_API_ADDRESS", defaultShippingAddr)
		v.SetDefault("TOKEN_KEY", "")
		v.SetDefault("LOG_LEVEL", defaultLogLevel)
		v.SetDefault("TRACKING_POLL_INTERVAL", defaultPollInterval)

		singleton = &Config{
			ServerAddr:      v.GetString("RUN_ADDRESS"),
			DatabaseDSN:     v.GetString("DATABASE_URI"),
			RedisAddr:       v.GetString("REDIS_ADDR"),
			ShippingAPIAddr: v.GetString("SHIPPING_API_ADDRESS"),
			TokenKey:        v.GetString("TOKEN_KEY"),
			LogLevel:        v.GetString("LOG_LEVEL"),
			PollInterval:    v.GetString("TRACKING_POLL_INTERVAL"),
		}
	})

	return singleton, nil
}
