package config

import (
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress      string
	BackendAddress  string
	APIToken        string
	RefreshInterval time.Duration
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8090", "dashboard address and port")
	flag.StringVar(&cfg.BackendAddress, "b", "http://localhost:8000/api", "analytics backend address")
	flag.StringVar(&cfg.APIToken, "t", "", "initial backend bearer token")
	flag.DurationVar(&cfg.RefreshInterval, "r", 0, "baseline refresh interval, 0 disables")
	flag.Parse()

	cfg.RunAddress = getEnv("RUN_ADDRESS", cfg.RunAddress)
	cfg.BackendAddress = getEnv("BACKEND_ADDRESS", cfg.BackendAddress)
	cfg.APIToken = getEnv("API_TOKEN", cfg.APIToken)
	if v, ok := os.LookupEnv("REFRESH_INTERVAL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RefreshInterval = d
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
