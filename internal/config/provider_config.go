package config

import (
	"strings"
	"time"
)

const defaultProviderBaseURL = "https://uniportal.huawei.com/saaslogin1/oauth2/"

type ProviderConfig interface {
	GetClientID() string
	GetClientSecret() string
	GetScope() string
	GetRedirectURI() string
	GetAuthorizeURL() string
	GetAccessTokenURL() string
	GetRefreshTokenURL() string
	GetUserInfoURL() string
	GetLogoutURL() string
	GetProviderTimeout() time.Duration
	GetOIDCIssuer() string
	GetOIDCJWKSURL() string
}

// Provider holds the identity provider client registration. Each endpoint
// defaults to a path under BaseURL unless it is set explicitly.
type Provider struct {
	ClientID        string        `env:"CLIENT_ID,required"`
	ClientSecret    string        `env:"CLIENT_SECRET,required"`
	Scope           string        `env:"SCOPE" envDefault:"base.profile"`
	RedirectURI     string        `env:"REDIRECT_URI" envDefault:"https://airview.rnd.huawei.com/authorize"`
	BaseURL         string        `env:"PROVIDER_BASE_URL" envDefault:"https://uniportal.huawei.com/saaslogin1/oauth2/"`
	AuthorizeURL    string        `env:"PROVIDER_AUTHORIZE_URL"`
	AccessTokenURL  string        `env:"PROVIDER_ACCESS_TOKEN_URL"`
	RefreshTokenURL string        `env:"PROVIDER_REFRESH_TOKEN_URL"`
	UserInfoURL     string        `env:"PROVIDER_USERINFO_URL"`
	LogoutURL       string        `env:"PROVIDER_LOGOUT_URL"`
	Timeout         time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"10s"`
	OIDCIssuer      string        `env:"OIDC_ISSUER"`
	OIDCJWKSURL     string        `env:"OIDC_JWKS_URL"`
}

var _ ProviderConfig = Provider{}

func (p Provider) GetClientID() string     { return p.ClientID }
func (p Provider) GetClientSecret() string { return p.ClientSecret }
func (p Provider) GetScope() string        { return p.Scope }
func (p Provider) GetRedirectURI() string  { return p.RedirectURI }

func (p Provider) GetAuthorizeURL() string    { return p.endpoint(p.AuthorizeURL, "authorize") }
func (p Provider) GetAccessTokenURL() string  { return p.endpoint(p.AccessTokenURL, "accesstoken") }
func (p Provider) GetRefreshTokenURL() string { return p.endpoint(p.RefreshTokenURL, "refreshtoken") }
func (p Provider) GetUserInfoURL() string     { return p.endpoint(p.UserInfoURL, "userinfo") }
func (p Provider) GetLogoutURL() string       { return p.endpoint(p.LogoutURL, "logout") }

func (p Provider) GetProviderTimeout() time.Duration { return p.Timeout }
func (p Provider) GetOIDCIssuer() string             { return p.OIDCIssuer }
func (p Provider) GetOIDCJWKSURL() string            { return p.OIDCJWKSURL }

func (p Provider) endpoint(override, path string) string {
	if override != "" {
		return override
	}
	base := p.BaseURL
	if base == "" {
		base = defaultProviderBaseURL
	}
	return strings.TrimSuffix(base, "/") + "/" + path
}
