package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/poofware/onboarding-service/internal/utils"
)

const AppName = "onboarding-service"

type Config struct {
	AppName string
	AppPort string
	AppUrl  string
	Env     string

	// Cron spec for the periodic onboarding-stats log line.
	StatsLogSchedule string
}

// LoadConfig reads the runtime environment. A local .env is honored in
// development; every value has a sane default since this service carries no
// secrets or external dependencies.
func LoadConfig() *Config {
	if err := godotenv.Load(); err == nil {
		utils.Logger.Info("Loaded environment from .env")
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	cfg := &Config{
		AppName:          AppName,
		AppPort:          getEnv("APP_PORT", "3001"),
		AppUrl:           getEnv("APP_URL", "http://localhost:5173"),
		Env:              getEnv("ENV", "development"),
		StatsLogSchedule: getEnv("STATS_LOG_SCHEDULE", "@hourly"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
