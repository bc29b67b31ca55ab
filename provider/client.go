package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/go-sso-relay/internal/config"
	"github.com/jrsteele09/go-sso-relay/internal/errors"
	"github.com/jrsteele09/go-sso-relay/internal/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const maxResponseBytes = 1 << 20

// IDTokenVerifier is satisfied by *oidc.IDTokenVerifier.
type IDTokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*oidc.IDToken, error)
}

// Token is the result of a code exchange or refresh.
type Token struct {
	*oauth2.Token
	IDToken string
	// Subject is set only when IDToken was verified
	Subject string
}

// Client relays calls to the identity provider. Every call is a single
// synchronous attempt bounded by the HTTP client's timeout and the caller's
// context.
type Client struct {
	oauth       *oauth2.Config
	scope       string
	refreshURL  string
	userInfoURL string
	logoutURL   string
	httpClient  *http.Client
	verifier    IDTokenVerifier
	now         func() time.Time
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithIDTokenVerifier enables verification of id_token in token responses.
func WithIDTokenVerifier(verifier IDTokenVerifier) Option {
	return func(c *Client) {
		c.verifier = verifier
	}
}

func New(cfg config.ProviderConfig, opts ...Option) *Client {
	c := &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.GetClientID(),
			ClientSecret: cfg.GetClientSecret(),
			RedirectURL:  cfg.GetRedirectURI(),
			Scopes:       strings.Fields(cfg.GetScope()),
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.GetAuthorizeURL(),
				TokenURL:  cfg.GetAccessTokenURL(),
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		scope:       cfg.GetScope(),
		refreshURL:  cfg.GetRefreshTokenURL(),
		userInfoURL: cfg.GetUserInfoURL(),
		logoutURL:   cfg.GetLogoutURL(),
		httpClient:  &http.Client{Timeout: cfg.GetProviderTimeout()},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AuthCodeURL builds the provider authorize redirect carrying client_id,
// redirect_uri, scope, response_type=code and state, plus an S256 challenge
// when codeVerifier is set.
func (c *Client) AuthCodeURL(state, codeVerifier string) string {
	var opts []oauth2.AuthCodeOption
	if codeVerifier != "" {
		opts = append(opts, oauth2.S256ChallengeOption(codeVerifier))
	}
	return c.oauth.AuthCodeURL(state, opts...)
}

// Exchange trades an authorization code for tokens.
func (c *Client) Exchange(ctx context.Context, code, codeVerifier string) (*Token, error) {
	req := tokenRequest{
		ClientID:     c.oauth.ClientID,
		ClientSecret: c.oauth.ClientSecret,
		GrantType:    AuthorizationCodeGrant,
		Code:         code,
		RedirectURI:  c.oauth.RedirectURL,
		CodeVerifier: codeVerifier,
	}
	return c.requestToken(ctx, EndpointAccessToken, c.oauth.Endpoint.TokenURL, req)
}

// Refresh trades a refresh token for a new token set.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	if refreshToken == "" {
		return nil, errors.ErrNoRefreshToken
	}
	req := tokenRequest{
		ClientID:     c.oauth.ClientID,
		GrantType:    RefreshTokenGrant,
		RefreshToken: refreshToken,
	}
	return c.requestToken(ctx, EndpointRefreshToken, c.refreshURL, req)
}

// UserInfo fetches the profile document for accessToken.
func (c *Client) UserInfo(ctx context.Context, accessToken string) (UserInfo, error) {
	req := userInfoRequest{
		ClientID:    c.oauth.ClientID,
		AccessToken: accessToken,
		Scope:       c.scope,
	}
	status, body, err := c.postJSON(ctx, EndpointUserInfo, c.userInfoURL, req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &ResponseError{Endpoint: EndpointUserInfo, StatusCode: status, Body: string(body)}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var info UserInfo
	if err := dec.Decode(&info); err != nil {
		return nil, &ResponseError{Endpoint: EndpointUserInfo, StatusCode: status, Body: string(body), Reason: err}
	}
	return info, nil
}

// LogoutURL returns the provider logout URL that sends the browser back to
// redirect afterwards.
func (c *Client) LogoutURL(redirect string) string {
	params := url.Values{}
	params.Set("clientId", c.oauth.ClientID)
	params.Set("redirect", redirect)

	u, err := url.Parse(c.logoutURL)
	if err != nil {
		return c.logoutURL + "?" + params.Encode()
	}
	q := u.Query()
	for k, v := range params {
		q[k] = v
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *Client) requestToken(ctx context.Context, endpoint, target string, req tokenRequest) (*Token, error) {
	status, body, err := c.postJSON(ctx, endpoint, target, req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		respErr := &ResponseError{Endpoint: endpoint, StatusCode: status, Body: string(body)}
		if oauthErr, ok := respErr.OAuth(); ok {
			log.Ctx(ctx).Warn().
				Str("endpoint", endpoint).
				Str("error", oauthErr.Code).
				Str("error_description", oauthErr.Description).
				Msg("Provider rejected token request")
		}
		return nil, respErr
	}

	tr, err := decodeTokenResponse(body)
	if err != nil {
		return nil, &ResponseError{Endpoint: endpoint, StatusCode: status, Body: string(body), Reason: err}
	}
	if utils.Value(tr.AccessToken) == "" {
		return nil, &ResponseError{Endpoint: endpoint, StatusCode: status, Body: string(body), Reason: errors.ErrMissingAccessToken}
	}

	token := &Token{
		Token: &oauth2.Token{
			AccessToken:  *tr.AccessToken,
			TokenType:    string(tr.TokenType),
			RefreshToken: utils.Value(tr.RefreshToken),
		},
		IDToken: utils.Value(tr.IdToken),
	}
	if tr.ExpiresIn > 0 {
		token.Expiry = c.now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	log.Ctx(ctx).Debug().
		Str("endpoint", endpoint).
		Str("scope", string(tr.Scope)).
		Bool("refresh_token", token.RefreshToken != "").
		Bool("id_token", token.IDToken != "").
		Msg("Provider issued tokens")

	if c.verifier != nil && token.IDToken != "" {
		idToken, err := c.verifier.Verify(ctx, token.IDToken)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", endpoint, errors.ErrInvalidIDToken, err)
		}
		token.Subject = idToken.Subject
	}
	return token, nil
}

func (c *Client) postJSON(ctx context.Context, endpoint, target string, payload interface{}) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "[provider %s] failed to encode request", endpoint)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(data))
	if err != nil {
		return 0, nil, errors.Wrapf(err, "[provider %s] failed to build request", endpoint)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("endpoint", endpoint).Msg("Provider call failed")
		return 0, nil, fmt.Errorf("%w: %s: %w", errors.ErrProviderUnreachable, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s: reading response: %w", errors.ErrProviderUnreachable, endpoint, err)
	}

	log.Ctx(ctx).Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("Provider call")
	return resp.StatusCode, body, nil
}

// UserInfo is the provider's profile document, left as decoded JSON.
type UserInfo map[string]interface{}

// Field is a single rendered userinfo entry.
type Field struct {
	Key   string
	Value string
}

// Fields returns the document's entries sorted by key, with non-string
// values rendered as JSON.
func (u UserInfo) Fields() []Field {
	fields := make([]Field, 0, len(u))
	for k, v := range u {
		fields = append(fields, Field{Key: k, Value: renderValue(v)})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return fields
}

func renderValue(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	case nil:
		return ""
	case []interface{}:
		if strs, ok := utils.StringSlice(value); ok {
			return strings.Join(strs, ", ")
		}
		encoded, _ := json.Marshal(value)
		return string(encoded)
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(encoded)
	}
}
