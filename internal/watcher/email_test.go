package watcher

import (
	"bytes"
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmailConfig() EmailConfig {
	return EmailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "watcher",
		Password: "app-password",
		From:     "watcher@example.com",
		To:       []string{"ops@example.com", "analyst@example.com"},
	}
}

func TestNewNotifierFallsBackToStdout(t *testing.T) {
	cfg := testEmailConfig()
	cfg.Password = ""

	var out bytes.Buffer
	n := NewNotifier(cfg, &out)
	require.IsType(t, &StdoutNotifier{}, n)

	require.NoError(t, n.Notify(context.Background(), SubjectSnapshot, "- A: 2024  (u)"))
	assert.Equal(t,
		"Email settings not fully configured. Here's what would be sent:\n"+
			"SUBJECT: Healthcare report watcher: latest snapshot\n"+
			"- A: 2024  (u)\n",
		out.String())
}

func TestStdoutNotifierDefaultsToStdout(t *testing.T) {
	n := &StdoutNotifier{}
	assert.NotPanics(t, func() {
		require.NoError(t, n.Notify(context.Background(), SubjectSnapshot, "body"))
	})

	n = NewNotifier(EmailConfig{}, nil).(*StdoutNotifier)
	assert.NoError(t, n.Notify(context.Background(), SubjectSnapshot, "body"))
}

func TestNewNotifierConfigured(t *testing.T) {
	n := NewNotifier(testEmailConfig(), &bytes.Buffer{})
	assert.IsType(t, &EmailNotifier{}, n)
}

func TestEmailConfigIsConfigured(t *testing.T) {
	assert.True(t, testEmailConfig().IsConfigured())

	for _, mutate := range []func(*EmailConfig){
		func(c *EmailConfig) { c.Username = "" },
		func(c *EmailConfig) { c.Password = "" },
		func(c *EmailConfig) { c.From = "" },
		func(c *EmailConfig) { c.To = nil },
	} {
		cfg := testEmailConfig()
		mutate(&cfg)
		assert.False(t, cfg.IsConfigured())
	}
}

func TestEmailNotifierSends(t *testing.T) {
	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  []byte
		calls   int
	)
	n := NewEmailNotifier(testEmailConfig())
	n.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	n.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		calls++
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := n.Notify(context.Background(), SubjectAllFailed, "All sources failed to fetch:\n\n[ERROR] a: boom")
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "watcher@example.com", gotFrom)
	assert.Equal(t, []string{"ops@example.com", "analyst@example.com"}, gotTo)

	msg := string(gotMsg)
	headers, body, found := strings.Cut(msg, "\r\n\r\n")
	require.True(t, found)
	assert.Contains(t, headers, "From: watcher@example.com\r\n")
	assert.Contains(t, headers, "To: ops@example.com, analyst@example.com\r\n")
	assert.Contains(t, headers, "Subject: Healthcare report watcher: ALL CHECKS FAILED\r\n")
	assert.Contains(t, headers, "Date: Sun, 01 Jun 2025 09:00:00 +0000\r\n")
	assert.Contains(t, headers, "Content-Type: text/plain; charset=UTF-8")
	assert.Equal(t, "All sources failed to fetch:\r\n\r\n[ERROR] a: boom", body)
}

func TestEmailNotifierSendError(t *testing.T) {
	sendErr := errors.New("535 5.7.8 Username and Password not accepted")
	n := NewEmailNotifier(testEmailConfig())
	n.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return sendErr }

	err := n.Notify(context.Background(), SubjectSnapshot, "body")
	require.Error(t, err)
	assert.ErrorIs(t, err, sendErr)
	assert.Contains(t, err.Error(), "smtp.example.com:587")
}

func TestEmailNotifierCanceledContext(t *testing.T) {
	n := NewEmailNotifier(testEmailConfig())
	n.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("sendMail must not be called")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.Notify(ctx, SubjectSnapshot, "body"), context.Canceled)
}
