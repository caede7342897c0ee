package app

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"GYM_ADDR", "GYM_SESSION_TTL", "GYM_LOGIN_TOKEN_TTL", "GYM_AUDIENCE", "GYM_AUTO_MIGRATE", "SMTP_HOST"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, 240*time.Hour, cfg.SessionTTL)
	require.Equal(t, time.Hour, cfg.LoginTokenTTL)
	require.Equal(t, []string{"gymdesk"}, cfg.Audience)
	require.True(t, cfg.AutoMigrate)
	require.Empty(t, cfg.SMTP.Host)
	require.Equal(t, 587, cfg.SMTP.Port)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GYM_SESSION_TTL", "48h")
	t.Setenv("GYM_LOGIN_TOKEN_TTL", "15") // bare minutes
	t.Setenv("GYM_AUDIENCE", "gymdesk, portal ,")
	t.Setenv("GYM_AUTO_MIGRATE", "false")
	t.Setenv("SMTP_PORT", "not-a-port")

	cfg := LoadConfig()
	require.Equal(t, 48*time.Hour, cfg.SessionTTL)
	require.Equal(t, 15*time.Minute, cfg.LoginTokenTTL)
	require.Equal(t, []string{"gymdesk", "portal"}, cfg.Audience)
	require.False(t, cfg.AutoMigrate)
	require.Equal(t, 587, cfg.SMTP.Port)
}

func TestInitSessionKeysPersistsKey(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	cfg := Config{
		Issuer:         "gymdesk",
		Audience:       []string{"gymdesk"},
		SigningKeyPath: filepath.Join(t.TempDir(), "keys", "signing.pem"),
	}

	first, err := InitSessionKeys(cfg, logger)
	require.NoError(t, err)
	second, err := InitSessionKeys(cfg, logger)
	require.NoError(t, err)

	require.Equal(t, first.Signer.KID(), second.Signer.KID())
	require.Equal(t, first.KeySet.PublicJWKS(), second.KeySet.PublicJWKS())
}

func TestNewWiresApplication(t *testing.T) {
	cfg := Config{
		Addr:                 ":0",
		DatabaseFile:         filepath.Join(t.TempDir(), "gym.db"),
		AutoMigrate:          true,
		BaseURL:              "https://gym.test",
		Issuer:               "gymdesk",
		Audience:             []string{"gymdesk"},
		Timezone:             "UTC",
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
		LogLevel:             "error",
	}

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	require.NotNil(t, application.Logins())
	require.NotNil(t, application.Admins())

	cfg.Timezone = "Mars/Olympus_Mons"
	_, err = New(cfg)
	require.Error(t, err)
}
