package authflow

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-sso-relay/internal/errors"
)

// StateSigner issues and checks the OAuth2 state parameter as a short-lived
// HS256 JWT whose jti is the flow nonce.
type StateSigner struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewStateSigner creates a state signer with the given HMAC secret
func NewStateSigner(secret []byte, issuer string, ttl time.Duration, now func() time.Time) *StateSigner {
	if now == nil {
		now = time.Now
	}
	return &StateSigner{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		now:    now,
	}
}

func (s *StateSigner) Sign(nonce string) (string, error) {
	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		ID:        nonce,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign state with HMAC")
	}
	return signed, nil
}

// Verify checks signature, issuer and expiry and returns the nonce.
func (s *StateSigner) Verify(state string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(state, &claims, s.verificationKey,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return "", errors.ErrStateExpired
	}
	if err != nil {
		return "", errors.Wrapf(errors.ErrInvalidState, "%v", err)
	}
	if claims.ID == "" {
		return "", errors.Wrapf(errors.ErrInvalidState, "state has no nonce")
	}
	return claims.ID, nil
}

func (s *StateSigner) verificationKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Wrapf(errors.ErrInvalidState, "unexpected signing method: %v", token.Header["alg"])
	}
	return s.secret, nil
}
