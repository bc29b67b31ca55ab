// Package secrets derives independent purpose-bound keys from the single
// SESSION_SECRET so that the state signer and the session sealer never share
// key material.
package secrets

import (
	"crypto/sha256"
	"io"

	"github.com/jrsteele09/go-sso-relay/internal/errors"
	"golang.org/x/crypto/hkdf"
)

const (
	PurposeStateSigning   = "sso-relay/state-signing/v1"
	PurposeSessionSealing = "sso-relay/session-sealing/v1"
)

// Derive expands master into a key of length n bound to purpose.
func Derive(master []byte, purpose string, n int) ([]byte, error) {
	if len(master) == 0 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "[secrets Derive] empty master secret")
	}
	key := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, []byte(purpose)), key); err != nil {
		return nil, errors.Wrapf(err, "[secrets Derive] failed to expand key for %s", purpose)
	}
	return key, nil
}
