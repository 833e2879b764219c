package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
database:
  host: db.internal
  database: loyalty
auth:
  jwtSecret: a-secret-that-is-definitely-32-chars-long
server:
  allowedOrigins:
    - https://app.example.com
`

func writeConfig(t *testing.T, env, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfigFrom(t *testing.T) {
	t.Run("should apply defaults and convert durations", func(t *testing.T) {
		t.Setenv("LR_ENV", "test")
		dir := writeConfig(t, Test, minimalYAML)

		cfg, err := LoadConfigFrom(dir)

		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 3*time.Second, cfg.Database.LockTimeout)
		assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, 50*time.Millisecond, cfg.Points.ReadRetryInterval)
		assert.Equal(t, 10*time.Minute, cfg.OTP.TTL)
		assert.Equal(t, MailProviderLog, cfg.Mail.Provider)
		assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.AllowedOrigins)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("should let environment variables override the file", func(t *testing.T) {
		t.Setenv("LR_ENV", "test")
		t.Setenv("LR_DB_HOST", "override-host")
		t.Setenv("LR_SERVER_PORT", "9090")
		t.Setenv("LR_DB_LOCK_TIMEOUT_MS", "250")
		t.Setenv("LR_AUTH_COOKIE_SECURE", "false")
		dir := writeConfig(t, Test, minimalYAML)

		cfg, err := LoadConfigFrom(dir)

		require.NoError(t, err)
		assert.Equal(t, "override-host", cfg.Database.Host)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 250*time.Millisecond, cfg.Database.LockTimeout)
		assert.False(t, cfg.Auth.CookieSecure)
	})

	t.Run("should fail when no file exists for the environment", func(t *testing.T) {
		t.Setenv("LR_ENV", "staging")

		_, err := LoadConfigFrom(t.TempDir())

		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Host: "h", Database: "d"},
			Redis:    RedisConfig{Addr: "localhost:6379"},
			Auth:     AuthConfig{JWTSecret: "0123456789abcdef0123456789abcdef", TokenTTL: time.Hour},
			Points:   PointsConfig{MaxCodeAttempts: 5},
			OTP:      OTPConfig{TTL: time.Minute, MaxAttempts: 5},
			Mail:     MailConfig{Provider: MailProviderLog},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }, "jwtSecret"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "server port"},
		{"resend without key", func(c *Config) { c.Mail.Provider = MailProviderResend }, "resendApiKey"},
		{"unknown provider", func(c *Config) { c.Mail.Provider = "pigeon" }, "unknown mail provider"},
		{"no code attempts", func(c *Config) { c.Points.MaxCodeAttempts = 0 }, "maxCodeAttempts"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()

			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestConfig_SecurityWarnings(t *testing.T) {
	cfg := &Config{
		Environment: Production,
		Database:    DatabaseConfig{SSLMode: "disable"},
		Logger:      LoggerConfig{Level: "debug"},
		Mail:        MailConfig{Provider: MailProviderLog},
	}

	warnings := cfg.SecurityWarnings()

	assert.Len(t, warnings, 4)

	cfg.Environment = Development
	assert.Empty(t, cfg.SecurityWarnings())
}
