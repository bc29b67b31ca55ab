package provider

import (
	"context"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/go-sso-relay/internal/config"
	"github.com/jrsteele09/go-sso-relay/internal/errors"
)

// NewIDTokenVerifier builds a verifier from configuration. A JWKS URL takes
// precedence over issuer discovery. It returns nil when neither is set.
func NewIDTokenVerifier(ctx context.Context, cfg config.ProviderConfig) (IDTokenVerifier, error) {
	issuer := cfg.GetOIDCIssuer()
	jwksURL := cfg.GetOIDCJWKSURL()
	if issuer == "" && jwksURL == "" {
		return nil, nil
	}

	ctx = oidc.ClientContext(ctx, &http.Client{Timeout: cfg.GetProviderTimeout()})
	oidcConfig := &oidc.Config{ClientID: cfg.GetClientID()}

	if jwksURL != "" {
		oidcConfig.SkipIssuerCheck = issuer == ""
		keySet := oidc.NewRemoteKeySet(ctx, jwksURL)
		return oidc.NewVerifier(issuer, keySet, oidcConfig), nil
	}

	p, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, errors.Wrapf(err, "[provider NewIDTokenVerifier] failed to discover %s", issuer)
	}
	return p.Verifier(oidcConfig), nil
}
