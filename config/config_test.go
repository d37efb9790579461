package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("JWT_ACCESS_TTL", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.AccessTTL)
	assert.False(t, cfg.MailSendEnabled)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("BCRYPT_COST", "twelve")
	t.Setenv("JWT_ACCESS_TTL", "soon")
	t.Setenv("COOKIE_SECURE", "maybe")

	cfg := Load()

	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.AccessTTL)
	assert.False(t, cfg.CookieSecure)
}

func TestConfig_PostgresDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5433", DBName: "auth", DBSSLMode: "require"}
	assert.Equal(t, "postgres://u:p@db:5433/auth?sslmode=require", cfg.PostgresDSN())
}

func TestConfig_CSVLists(t *testing.T) {
	cfg := &Config{
		CORSAllowedOrigins: " http://a.test ,,http://b.test",
		ElasticsearchAddrs: "http://es:9200",
	}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
	assert.Equal(t, []string{"http://es:9200"}, cfg.ESAddrs())
	assert.Empty(t, (&Config{}).CORSOrigins())
}
