package cryptox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadOrCreateEd25519Key reads the signing key at path, generating and
// persisting one on first start. The boolean reports whether a new key was
// written. Sessions survive restarts only while this file does.
func LoadOrCreateEd25519Key(path string) ([]byte, bool, error) {
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if _, err := ParseEd25519Key(data); err != nil {
			return nil, false, fmt.Errorf("cryptox: key file %s: %w", path, err)
		}
		return data, false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, false, err
	}

	data, err = GenerateEd25519Key()
	if err != nil {
		return nil, false, err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, false, err
	}
	return data, true, nil
}
