package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kolmarket/kolmarket/pkg/jwtx"
)

// initSessionKey builds the Ed25519 session signer.
//
// When SessionKeyFile is set the key is loaded from disk, and generated plus
// written there on first start so sessions survive restarts. When unset the
// key is ephemeral and every restart invalidates outstanding sessions.
func initSessionKey(cfg Config, logger *slog.Logger) (jwtx.Signer, error) {
	if cfg.SessionKeyFile == "" {
		signer, err := jwtx.NewEphemeralSignerEdDSA("session-ephemeral")
		if err != nil {
			return nil, err
		}
		logger.Warn("using ephemeral session key, all existing sessions are now invalid")
		return signer, nil
	}

	pemKey, err := os.ReadFile(cfg.SessionKeyFile)
	switch {
	case err == nil:
		signer, err := jwtx.NewSignerEdDSA("session", pemKey)
		if err != nil {
			return nil, fmt.Errorf("load session key %s: %w", cfg.SessionKeyFile, err)
		}
		logger.Info("session key loaded", "path", cfg.SessionKeyFile)
		return signer, nil

	case os.IsNotExist(err):
		signer, err := jwtx.NewEphemeralSignerEdDSA("session")
		if err != nil {
			return nil, err
		}
		pemKey, err := jwtx.MarshalPKCS8PEM(signer.PrivateKey())
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(cfg.SessionKeyFile, pemKey, 0o600); err != nil {
			return nil, fmt.Errorf("write session key %s: %w", cfg.SessionKeyFile, err)
		}
		logger.Info("session key generated", "path", cfg.SessionKeyFile)
		return signer, nil

	default:
		return nil, fmt.Errorf("read session key %s: %w", cfg.SessionKeyFile, err)
	}
}
