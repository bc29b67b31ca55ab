package session

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jrsteele09/go-sso-relay/internal/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	sealKeySize   = 32
	sealNonceSize = 24
)

// Sealer encrypts and authenticates session payloads with NaCl secretbox so
// tokens are never written to an external store in the clear.
type Sealer struct {
	key [sealKeySize]byte
}

// NewSealer creates a sealer from a 32 byte key.
func NewSealer(key []byte) (*Sealer, error) {
	if len(key) != sealKeySize {
		return nil, fmt.Errorf("[session NewSealer] key must be %d bytes, got %d: %w", sealKeySize, len(key), errors.ErrInvalidConfig)
	}
	s := &Sealer{}
	copy(s.key[:], key)
	return s, nil
}

// Seal returns nonce || box.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	var nonce [sealNonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, errors.Wrapf(err, "[Sealer Seal] failed to read nonce")
	}
	return secretbox.Seal(nonce[:], plaintext, &nonce, &s.key), nil
}

// Open reverses Seal and fails on any tampering.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < sealNonceSize+secretbox.Overhead {
		return nil, errors.ErrSealedPayload
	}
	var nonce [sealNonceSize]byte
	copy(nonce[:], sealed[:sealNonceSize])
	plaintext, ok := secretbox.Open(nil, sealed[sealNonceSize:], &nonce, &s.key)
	if !ok {
		return nil, errors.ErrSealedPayload
	}
	return plaintext, nil
}

func encodeSession(session Session, sealer *Sealer) ([]byte, error) {
	payload, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode session %q", session.ID)
	}
	if sealer == nil {
		return payload, nil
	}
	return sealer.Seal(payload)
}

func decodeSession(payload []byte, sealer *Sealer) (Session, error) {
	if sealer != nil {
		opened, err := sealer.Open(payload)
		if err != nil {
			return Session{}, err
		}
		payload = opened
	}
	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return Session{}, errors.Wrapf(err, "failed to decode session")
	}
	return session, nil
}
