package provider

// GrantType represents the OAuth 2.0 grant type sent to the provider's token endpoints.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	// Token request includes: client_id, client_secret, code, redirect_uri (+ code_verifier with PKCE)
	AuthorizationCodeGrant GrantType = "authorization_code"

	// RefreshTokenGrant exchanges a refresh token for new tokens.
	// Token request includes: client_id, refresh_token
	RefreshTokenGrant GrantType = "refresh_token"
)

// Endpoint names used in logs and errors
const (
	EndpointAccessToken  = "accesstoken"
	EndpointRefreshToken = "refreshtoken"
	EndpointUserInfo     = "userinfo"
)

type tokenRequest struct {
	ClientID     string    `json:"client_id"`
	ClientSecret string    `json:"client_secret,omitempty"`
	GrantType    GrantType `json:"grant_type"`
	Code         string    `json:"code,omitempty"`
	RedirectURI  string    `json:"redirect_uri,omitempty"`
	CodeVerifier string    `json:"code_verifier,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
}

type userInfoRequest struct {
	ClientID    string `json:"client_id"`
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
}
