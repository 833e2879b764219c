package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Points      PointsConfig   `mapstructure:"points"`
	OTP         OTPConfig      `mapstructure:"otp"`
	Mail        MailConfig     `mapstructure:"mail"`
	Admin       AdminConfig    `mapstructure:"admin"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	LockTimeout     time.Duration `mapstructure:"lockTimeout"`     // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// RedisConfig contains the session store connection
type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	DialTimeout time.Duration `mapstructure:"dialTimeout"` // seconds
}

// AuthConfig contains session and credential settings
type AuthConfig struct {
	JWTSecret                string        `mapstructure:"jwtSecret"`
	Issuer                   string        `mapstructure:"issuer"`
	TokenTTL                 time.Duration `mapstructure:"tokenTTL"` // minutes
	BcryptCost               int           `mapstructure:"bcryptCost"`
	CookieName               string        `mapstructure:"cookieName"`
	CookieDomain             string        `mapstructure:"cookieDomain"`
	CookieSecure             bool          `mapstructure:"cookieSecure"`
	RequireEmailVerification bool          `mapstructure:"requireEmailVerification"`
}

// PointsConfig contains redemption engine settings
type PointsConfig struct {
	MaxCodeAttempts      int           `mapstructure:"maxCodeAttempts"`
	ReadRetryAttempts    int           `mapstructure:"readRetryAttempts"`
	ReadRetryInterval    time.Duration `mapstructure:"readRetryInterval"`    // milliseconds
	ReadRetryMaxInterval time.Duration `mapstructure:"readRetryMaxInterval"` // milliseconds
}

// OTPConfig contains email verification code settings
type OTPConfig struct {
	TTL         time.Duration `mapstructure:"ttl"` // minutes
	MaxAttempts int           `mapstructure:"maxAttempts"`
	Digits      int           `mapstructure:"digits"`
}

// MailConfig selects the transactional email sender
type MailConfig struct {
	Provider     string `mapstructure:"provider"` // resend or log
	ResendAPIKey string `mapstructure:"resendApiKey"`
	From         string `mapstructure:"from"`
}

// AdminConfig holds the bootstrap administrator account
type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// Enabled reports whether an admin account should be bootstrapped
func (a AdminConfig) Enabled() bool {
	return a.Email != "" && a.Password != ""
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// Validate checks required settings
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid server port: %d", c.Server.Port))
	}
	if c.Database.Host == "" {
		problems = append(problems, "database host is required")
	}
	if c.Database.Database == "" {
		problems = append(problems, "database name is required")
	}
	if c.Redis.Addr == "" {
		problems = append(problems, "redis address is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		problems = append(problems, "auth.jwtSecret must be at least 32 characters")
	}
	if c.Auth.TokenTTL <= 0 {
		problems = append(problems, "auth.tokenTTL must be positive")
	}
	if c.Points.MaxCodeAttempts <= 0 {
		problems = append(problems, "points.maxCodeAttempts must be positive")
	}
	if c.OTP.TTL <= 0 || c.OTP.MaxAttempts <= 0 {
		problems = append(problems, "otp.ttl and otp.maxAttempts must be positive")
	}

	switch c.Mail.Provider {
	case MailProviderLog:
	case MailProviderResend:
		if c.Mail.ResendAPIKey == "" || c.Mail.From == "" {
			problems = append(problems, "mail.resendApiKey and mail.from are required for the resend provider")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown mail provider: %s", c.Mail.Provider))
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// SecurityWarnings lists settings that are unsafe for production
func (c *Config) SecurityWarnings() []string {
	if !c.IsProduction() {
		return nil
	}

	var warnings []string
	if !c.Auth.CookieSecure {
		warnings = append(warnings, "auth.cookieSecure is disabled")
	}
	if c.Database.SSLMode == "disable" {
		warnings = append(warnings, "database TLS is disabled")
	}
	if c.Mail.Provider == MailProviderLog {
		warnings = append(warnings, "verification codes are only logged, not mailed")
	}
	if c.Logger.Level == "debug" {
		warnings = append(warnings, "debug logging is enabled")
	}
	return warnings
}
