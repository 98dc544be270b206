package watcher

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	cfg := configFromViper(viper.New())

	assert.Equal(t, DefaultSMTPHost, cfg.Email.Host)
	assert.Equal(t, DefaultSMTPPort, cfg.Email.Port)
	assert.Empty(t, cfg.Email.To)
	assert.False(t, cfg.Email.IsConfigured())
	assert.Equal(t, DefaultFetchTimeout, cfg.Fetch.Timeout)
	assert.Equal(t, DefaultUserAgent, cfg.Fetch.UserAgent)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfigFromValues(t *testing.T) {
	v := viper.New()
	v.Set("SMTP_HOST", "mail.example.org")
	v.Set("SMTP_PORT", "2525")
	v.Set("SMTP_USER", "user")
	v.Set("SMTP_PASS", "pass")
	v.Set("EMAIL_FROM", "from@example.org")
	v.Set("EMAIL_TO", " a@example.org, ,b@example.org ")
	v.Set("FETCH_TIMEOUT", "5s")

	cfg := configFromViper(v)
	assert.Equal(t, EmailConfig{
		Host:     "mail.example.org",
		Port:     2525,
		Username: "user",
		Password: "pass",
		From:     "from@example.org",
		To:       []string{"a@example.org", "b@example.org"},
	}, cfg.Email)
	assert.True(t, cfg.Email.IsConfigured())
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
}

func TestConfigInvalidNumbersUseDefaults(t *testing.T) {
	v := viper.New()
	v.Set("SMTP_PORT", "not-a-port")
	v.Set("FETCH_TIMEOUT", "-1s")

	cfg := configFromViper(v)
	assert.Equal(t, DefaultSMTPPort, cfg.Email.Port)
	assert.Equal(t, DefaultFetchTimeout, cfg.Fetch.Timeout)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.env.example")
	t.Setenv("SMTP_USER", "env-user")
	t.Setenv("SMTP_PASS", "env-pass")
	t.Setenv("EMAIL_FROM", "env@example.com")
	t.Setenv("EMAIL_TO", "dest@example.com")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadConfig()
	assert.Equal(t, "smtp.env.example", cfg.Email.Host)
	assert.Equal(t, DefaultSMTPPort, cfg.Email.Port)
	assert.Equal(t, []string{"dest@example.com"}, cfg.Email.To)
	assert.True(t, cfg.Email.IsConfigured())
	assert.Equal(t, "debug", cfg.LogLevel)
}
