package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/gymdesk/pkg/cryptox"
	"github.com/aussiebroadwan/gymdesk/pkg/jwtx"
)

// InitSessionKeys builds the key ring that signs and verifies sessions.
//
// With GYM_SIGNING_KEY_PATH set the Ed25519 key is read from that file and
// created there on first start, so sessions survive restarts. Without it a
// key is generated in memory and every session dies with the process.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyRing, error) {
	var (
		pemKey []byte
		err    error
	)

	if cfg.SigningKeyPath != "" {
		var created bool
		pemKey, created, err = cryptox.LoadOrCreateEd25519Key(cfg.SigningKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load signing key: %w", err)
		}
		if created {
			logger.Info("generated new signing key", "path", cfg.SigningKeyPath)
		} else {
			logger.Info("loaded signing key", "path", cfg.SigningKeyPath)
		}
	} else {
		pemKey, err = cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
		logger.Warn("using an ephemeral signing key; sessions end on restart")
	}

	keys, err := jwtx.NewKeyRing(pemKey, cfg.Issuer, cfg.Audience)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize key ring: %w", err)
	}

	logger.Info("session keys ready",
		"algorithm", keys.Signer.Alg(),
		"kid", keys.Signer.KID(),
		"issuer", cfg.Issuer,
	)
	return keys, nil
}
