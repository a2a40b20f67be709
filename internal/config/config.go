package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DevSessionSecret signs tokens outside production when APP_SESSION_SECRET is unset.
const DevSessionSecret = "fallback-secret-key-for-dev-only"

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Credentials of the single account
	Login        string
	Password     string
	PasswordHash string

	// Session
	SessionSecret  string
	SecureCookie   bool
	RevokeOnLogout bool

	// Ledger
	DemoData bool

	// Events
	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if present; the real environment always wins
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	env := getEnv("ENV", "development")
	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  env,

		Login:        os.Getenv("APP_LOGIN"),
		Password:     os.Getenv("APP_PASSWORD"),
		PasswordHash: os.Getenv("APP_PASSWORD_HASH"),

		SessionSecret:  os.Getenv("APP_SESSION_SECRET"),
		SecureCookie:   getBool("COOKIE_SECURE", env == "production"),
		RevokeOnLogout: getBool("SESSION_REVOKE_ON_LOGOUT", true),

		DemoData: getBool("DEMO_DATA", false),

		AMQPURL:        os.Getenv("AMQP_URL"),
		AMQPExchange:   getEnv("AMQP_EXCHANGE", "theark"),
		AMQPRoutingKey: getEnv("AMQP_ROUTING_KEY", "ledger.entry.created"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration and fills the development session secret.
func (c *Config) Validate() error {
	if c.Login == "" {
		return errors.New("APP_LOGIN is required")
	}
	if c.Password == "" && c.PasswordHash == "" {
		return errors.New("APP_PASSWORD or APP_PASSWORD_HASH is required")
	}
	if c.SessionSecret == "" {
		if c.IsProduction() {
			return errors.New("APP_SESSION_SECRET is required in production")
		}
		log.Println("Warning: APP_SESSION_SECRET not set, using development secret")
		c.SessionSecret = DevSessionSecret
	}
	return nil
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBool parses a boolean environment variable, keeping the default on bad input.
func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %v\n", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
