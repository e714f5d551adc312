package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds application configuration
type Config struct {
	Port string
	Env  string

	DBDriver   string // postgres, mysql or sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTKey    string
	JWTTTL    time.Duration
	SaltRound int

	LogLevel  zerolog.Level
	LogFormat string // pretty or json

	PaymentApiURL   string
	PaymentApiKey   string
	PaymentCurrency string
	PaymentTimeout  time.Duration

	SendgridApiKey  string
	EmailSender     string
	EmailSenderName string

	RedisURL        string
	EnrollLockTTL   time.Duration
	PendingTTL      time.Duration
	SweeperSchedule string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// warnings collected while loading, logged once logging is up
var loadWarnings []string

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		loadWarnings = append(loadWarnings, ".env file not found, using system environment variables")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),
		Env:  getEnv("APP_ENV", "development"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "barmaja"),

		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		JWTTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		LogLevel:  getEnvLevel("LOG_LEVEL", zerolog.InfoLevel),
		LogFormat: getEnv("LOG_FORMAT", "pretty"),

		PaymentApiURL:   getEnv("PAYMENT_API_URL", "https://api.stripe.com/v1/"),
		PaymentApiKey:   getEnv("PAYMENT_API_KEY", ""),
		PaymentCurrency: getEnv("PAYMENT_CURRENCY", "usd"),
		PaymentTimeout:  getEnvDuration("PAYMENT_TIMEOUT", 20*time.Second),

		SendgridApiKey:  getEnv("SENDGRID_API_KEY", ""),
		EmailSender:     getEnv("EMAIL_SENDER", "no-reply@barmaja.academy"),
		EmailSenderName: getEnv("EMAIL_SENDER_NAME", "Barmaja Academy"),

		RedisURL:        getEnv("REDIS_URL", ""),
		EnrollLockTTL:   getEnvDuration("ENROLL_LOCK_TTL", 30*time.Second),
		PendingTTL:      getEnvDuration("PENDING_ENROLLMENT_TTL", 15*time.Minute),
		SweeperSchedule: getEnv("SWEEPER_SCHEDULE", "*/5 * * * *"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		loadWarnings = append(loadWarnings, "using default JWT_SECRET_KEY, update it in your environment")
	}
	if AppConfig.PaymentApiKey == "" {
		loadWarnings = append(loadWarnings, "PAYMENT_API_KEY is empty, paid enrollments will fail")
	}
}

// Warnings returns the problems found by LoadConfig.
func Warnings() []string {
	return loadWarnings
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		loadWarnings = append(loadWarnings, "invalid integer in "+key+", using default")
		return defaultValue
	}
	return intValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		loadWarnings = append(loadWarnings, "invalid duration in "+key+", using default")
		return defaultValue
	}
	return d
}

func getEnvLevel(key string, defaultValue zerolog.Level) zerolog.Level {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	level, err := zerolog.ParseLevel(value)
	if err != nil {
		loadWarnings = append(loadWarnings, "invalid log level in "+key+", using default")
		return defaultValue
	}
	return level
}
