package provider

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TokenResponse is the provider's answer from the access-token and
// refresh-token endpoints (RFC 6749 section 5.1 shape). Only the token
// fields are decoded strictly. The rest is informational and never fails
// a response.
type TokenResponse struct {
	// AccessToken is the bearer credential for userinfo. A nil value means
	// the field was absent, which the relay treats as a failed exchange.
	AccessToken *string `json:"access_token,omitempty"`

	// RefreshToken, when present, replaces the session's refresh token.
	RefreshToken *string `json:"refresh_token,omitempty"`

	// IdToken is only issued by OpenID Connect capable providers.
	IdToken *string `json:"id_token,omitempty"`

	TokenType looseString `json:"token_type,omitempty"`

	// ExpiresIn is the access token lifetime in seconds. Zero when absent or
	// not a number.
	ExpiresIn looseSeconds `json:"expires_in,omitempty"`

	Scope looseString `json:"scope,omitempty"`
}

// looseSeconds accepts a JSON number or a numeric string and falls back to
// zero for anything else.
type looseSeconds int64

func (f *looseSeconds) UnmarshalJSON(data []byte) error {
	*f = 0
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		*f = looseSeconds(v)
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			*f = looseSeconds(n)
		}
	}
	return nil
}

// looseString accepts a JSON string or an array of strings (joined with
// spaces, as scopes are) and falls back to empty for anything else.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	*s = ""
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case string:
		*s = looseString(v)
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				parts = append(parts, str)
			}
		}
		*s = looseString(strings.Join(parts, " "))
	}
	return nil
}

func decodeTokenResponse(body []byte) (TokenResponse, error) {
	var tr TokenResponse
	err := json.Unmarshal(body, &tr)
	return tr, err
}
