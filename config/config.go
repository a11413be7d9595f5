package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Resolution engine tuning.
	AutoFillThreshold  float64 `mapstructure:"AUTO_FILL_THRESHOLD"`
	BusinessOpenMin    int     `mapstructure:"BUSINESS_OPEN_MIN"`
	BusinessCloseMin   int     `mapstructure:"BUSINESS_CLOSE_MIN"`
	SlotStepMin        int     `mapstructure:"SLOT_STEP_MIN"`
	BookingHorizonDays int     `mapstructure:"BOOKING_HORIZON_DAYS"`
	SessionTTLMinutes  int     `mapstructure:"SESSION_TTL_MINUTES"`
	ReminderLeadMin    int     `mapstructure:"REMINDER_LEAD_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("AUTO_FILL_THRESHOLD", 0.8)
	viper.SetDefault("BUSINESS_OPEN_MIN", 540)   // 09:00
	viper.SetDefault("BUSINESS_CLOSE_MIN", 1140) // 19:00
	viper.SetDefault("SLOT_STEP_MIN", 30)
	viper.SetDefault("BOOKING_HORIZON_DAYS", 14)
	viper.SetDefault("SESSION_TTL_MINUTES", 10)
	viper.SetDefault("REMINDER_LEAD_MIN", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// GetEnv returns the application environment.
func GetEnv() string {
	return AppConfig.Env
}

// IsProduction checks if the environment is production.
func IsProduction() bool {
	return GetEnv() == "production"
}
