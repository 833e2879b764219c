package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Mail providers
const (
	MailProviderResend = "resend"
	MailProviderLog    = "log"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "LR"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the first matching directory and applies
// defaults and LR_ environment overrides
func LoadConfigFrom(paths ...string) (*Config, error) {
	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.lockTimeout", 3000)   // milliseconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dialTimeout", 5) // seconds

	v.SetDefault("auth.issuer", "loyalty-service")
	v.SetDefault("auth.tokenTTL", 60*24) // minutes
	v.SetDefault("auth.bcryptCost", 12)
	v.SetDefault("auth.cookieName", "lr_session")
	v.SetDefault("auth.cookieSecure", true)
	v.SetDefault("auth.requireEmailVerification", false)

	v.SetDefault("points.maxCodeAttempts", 5)
	v.SetDefault("points.readRetryAttempts", 3)
	v.SetDefault("points.readRetryInterval", 50)     // milliseconds
	v.SetDefault("points.readRetryMaxInterval", 500) // milliseconds

	v.SetDefault("otp.ttl", 10) // minutes
	v.SetDefault("otp.maxAttempts", 5)
	v.SetDefault("otp.digits", 6)

	v.SetDefault("mail.provider", MailProviderLog)

	v.SetDefault("admin.name", "Administrator")
}

// getEnvironment determines the environment to use based on LR_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values.
// Secrets are expected to come from the environment only.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"LR_DB_HOST":             "database.host",
		"LR_DB_PORT":             "database.port",
		"LR_DB_USERNAME":         "database.username",
		"LR_DB_PASSWORD":         "database.password",
		"LR_DB_NAME":             "database.database",
		"LR_DB_SSL_MODE":         "database.sslMode",
		"LR_SERVER_HOST":         "server.host",
		"LR_LOGGER_LEVEL":        "logger.level",
		"LR_REDIS_ADDR":          "redis.addr",
		"LR_REDIS_PASSWORD":      "redis.password",
		"LR_AUTH_JWT_SECRET":     "auth.jwtSecret",
		"LR_AUTH_COOKIE_DOMAIN":  "auth.cookieDomain",
		"LR_MAIL_PROVIDER":       "mail.provider",
		"LR_MAIL_RESEND_API_KEY": "mail.resendApiKey",
		"LR_MAIL_FROM":           "mail.from",
		"LR_ADMIN_EMAIL":         "admin.email",
		"LR_ADMIN_PASSWORD":      "admin.password",
		"LR_ADMIN_NAME":          "admin.name",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"LR_SERVER_PORT":                   "server.port",
		"LR_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"LR_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"LR_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"LR_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"LR_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"LR_DB_LOCK_TIMEOUT_MS":            "database.lockTimeout",
		"LR_REDIS_DB":                      "redis.db",
		"LR_AUTH_TOKEN_TTL_MINUTES":        "auth.tokenTTL",
		"LR_POINTS_MAX_CODE_ATTEMPTS":      "points.maxCodeAttempts",
		"LR_OTP_TTL_MINUTES":               "otp.ttl",
		"LR_OTP_MAX_ATTEMPTS":              "otp.maxAttempts",
	}
	for env, key := range intOverrides {
		if value := getEnvInt(env, -1); value >= 0 {
			v.Set(key, value)
		}
	}

	boolOverrides := map[string]string{
		"LR_AUTH_COOKIE_SECURE":               "auth.cookieSecure",
		"LR_AUTH_REQUIRE_EMAIL_VERIFICATION":  "auth.requireEmailVerification",
	}
	for env, key := range boolOverrides {
		if value, err := strconv.ParseBool(os.Getenv(env)); err == nil {
			v.Set(key, value)
		}
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.LockTimeout = time.Duration(config.Database.LockTimeout) * time.Millisecond
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Redis.DialTimeout = time.Duration(config.Redis.DialTimeout) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Minute

	config.Points.ReadRetryInterval = time.Duration(config.Points.ReadRetryInterval) * time.Millisecond
	config.Points.ReadRetryMaxInterval = time.Duration(config.Points.ReadRetryMaxInterval) * time.Millisecond

	config.OTP.TTL = time.Duration(config.OTP.TTL) * time.Minute
}
