package server_test

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jrsteele09/go-sso-relay/authflow"
	"github.com/jrsteele09/go-sso-relay/internal/config"
	"github.com/jrsteele09/go-sso-relay/provider"
	"github.com/jrsteele09/go-sso-relay/server"
	"github.com/jrsteele09/go-sso-relay/session"
	"github.com/stretchr/testify/require"
)

type fakeIdP struct {
	mu       sync.Mutex
	requests map[string][]map[string]string
	handlers map[string]func(w http.ResponseWriter)
}

func (f *fakeIdP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.requests[r.URL.Path] = append(f.requests[r.URL.Path], body)
	h, ok := f.handlers[r.URL.Path]
	f.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w)
}

func (f *fakeIdP) handle(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[path] = func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (f *fakeIdP) calls(path string) []map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[path]
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type harness struct {
	t        *testing.T
	idp      *fakeIdP
	relay    *httptest.Server
	store    *session.MemoryStore
	sessions *session.Manager
	clock    *testClock
	config   config.Config
}

func newHarness(t *testing.T, overrides map[string]string) *harness {
	t.Helper()

	idp := &fakeIdP{
		requests: map[string][]map[string]string{},
		handlers: map[string]func(w http.ResponseWriter){},
	}
	idpServer := httptest.NewServer(idp)
	t.Cleanup(idpServer.Close)

	env := map[string]string{
		"CLIENT_ID":         "airview_login",
		"CLIENT_SECRET":     "airview_admin",
		"REDIRECT_URI":      "https://relay.example.com/authorize",
		"PROVIDER_BASE_URL": idpServer.URL,
		"PROVIDER_TIMEOUT":  "2s",
		"ENV":               "TEST",
		"SESSION_SECRET":    "test-secret",
	}
	for k, v := range overrides {
		env[k] = v
	}
	cfg, err := config.LoadFrom(env)
	require.NoError(t, err)

	clock := &testClock{now: time.Now()}
	signer := authflow.NewStateSigner(cfg.GetSessionSecret(), cfg.GetAppName(), cfg.GetStateTTL(), clock.Now)
	flows := authflow.NewManager(signer, authflow.NewInMemoryRepo(cfg.GetStateTTL(), clock.Now), cfg.GetRequirePKCE())

	store := session.NewMemoryStore()
	sessions := session.NewManager(store, cfg.GetSessionCookieName(), cfg.GetSessionMaxAge())

	srv, err := server.New(cfg, provider.New(cfg), sessions, flows)
	require.NoError(t, err)

	relay := httptest.NewServer(srv)
	t.Cleanup(relay.Close)

	return &harness{t: t, idp: idp, relay: relay, store: store, sessions: sessions, clock: clock, config: cfg}
}

// browser returns a client with its own cookie jar that does not follow redirects.
func (h *harness) browser() *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(h.t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (h *harness) get(client *http.Client, path string) (*http.Response, string) {
	h.t.Helper()
	resp, err := client.Get(h.relay.URL + path)
	require.NoError(h.t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(h.t, err)
	return resp, string(body)
}

// beginLogin starts a flow and returns the signed state the provider would echo back.
func (h *harness) beginLogin(client *http.Client) string {
	h.t.Helper()
	resp, _ := h.get(client, "/authorize")
	require.Equal(h.t, http.StatusFound, resp.StatusCode)
	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(h.t, err)
	state := loc.Query().Get("state")
	require.NotEmpty(h.t, state)
	return state
}

func (h *harness) login(client *http.Client) {
	h.t.Helper()
	state := h.beginLogin(client)
	resp, body := h.get(client, "/authorize?code=X&state="+url.QueryEscape(state))
	require.Equal(h.t, http.StatusSeeOther, resp.StatusCode, body)
	require.Equal(h.t, "/welcome", resp.Header.Get("Location"))
}

func (h *harness) sessionCookie(client *http.Client) string {
	u, _ := url.Parse(h.relay.URL)
	for _, c := range client.Jar.Cookies(u) {
		if c.Name == h.sessions.CookieName() {
			return c.Value
		}
	}
	return ""
}

func TestAuthorize_RedirectsToProvider(t *testing.T) {
	h := newHarness(t, nil)

	resp, _ := h.get(h.browser(), "/authorize")
	require.Equal(t, http.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	require.Equal(t, h.config.GetAuthorizeURL(), loc.Scheme+"://"+loc.Host+loc.Path)
	q := loc.Query()
	require.Equal(t, "airview_login", q.Get("client_id"))
	require.Equal(t, "https://relay.example.com/authorize", q.Get("redirect_uri"))
	require.Equal(t, "base.profile", q.Get("scope"))
	require.Equal(t, "code", q.Get("response_type"))
	require.NotEmpty(t, q.Get("state"))
	require.Empty(t, q.Get("code_challenge"))

	var flowCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == server.FlowCookieName {
			flowCookie = c
		}
	}
	require.NotNil(t, flowCookie)
	require.True(t, flowCookie.HttpOnly)
	require.Equal(t, int(h.config.GetStateTTL().Seconds()), flowCookie.MaxAge)
}

func TestAuthorize_PKCE(t *testing.T) {
	h := newHarness(t, map[string]string{"REQUIRE_PKCE": "true"})
	h.idp.handle("/accesstoken", http.StatusOK, `{"access_token":"A1"}`)

	client := h.browser()
	resp, _ := h.get(client, "/authorize")
	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "S256", loc.Query().Get("code_challenge_method"))

	resp, _ = h.get(client, "/authorize?code=X&state="+url.QueryEscape(loc.Query().Get("state")))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.NotEmpty(t, h.idp.calls("/accesstoken")[0]["code_verifier"])
}

func TestLoginFlow(t *testing.T) {
	h := newHarness(t, nil)
	h.idp.handle("/accesstoken", http.StatusOK, `{"access_token":"A1","refresh_token":"R1","expires_in":3600}`)
	h.idp.handle("/userinfo", http.StatusOK, `{"uid":"u1","displayName":"Ada Lovelace"}`)
	h.idp.handle("/refreshtoken", http.StatusOK, `{"access_token":"A2-secret","refresh_token":"R2-secret"}`)

	client := h.browser()
	h.login(client)

	calls := h.idp.calls("/accesstoken")
	require.Len(t, calls, 1)
	require.Equal(t, "authorization_code", calls[0]["grant_type"])
	require.Equal(t, "X", calls[0]["code"])

	sess, err := h.store.Get(t.Context(), h.sessionCookie(client))
	require.NoError(t, err)
	require.Equal(t, "A1", sess.AccessToken)
	require.Equal(t, "R1", sess.RefreshToken)

	resp, body := h.get(client, "/welcome")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "You are signed in")

	resp, body = h.get(client, "/profile")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "Ada Lovelace")
	require.Equal(t, "A1", h.idp.calls("/userinfo")[0]["access_token"])

	resp, body = h.get(client, "/refresh")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "Tokens refreshed")
	require.NotContains(t, body, "A2-secret")
	require.NotContains(t, body, "R2-secret")
	require.Equal(t, "R1", h.idp.calls("/refreshtoken")[0]["refresh_token"])

	sess, err = h.store.Get(t.Context(), h.sessionCookie(client))
	require.NoError(t, err)
	require.Equal(t, "A2-secret", sess.AccessToken)
	require.Equal(t, "R2-secret", sess.RefreshToken)
}

func TestLogin_RotatesSessionID(t *testing.T) {
	h := newHarness(t, nil)
	h.idp.handle("/accesstoken", http.StatusOK, `{"access_token":"A1"}`)

	client := h.browser()
	h.login(client)
	first := h.sessionCookie(client)
	require.NotEmpty(t, first)

	h.login(client)
	second := h.sessionCookie(client)
	require.NotEmpty(t, second)
	require.NotEqual(t, first, second)

	_, err := h.store.Get(t.Context(), first)
	require.Error(t, err)
}

func TestAuthorize_MissingAccessToken(t *testing.T) {
	h := newHarness(t, nil)
	h.idp.handle("/accesstoken", http.StatusOK, `{"errcode":"1001","message":"code expired"}`)

	client := h.browser()
	state := h.beginLogin(client)
	resp, body := h.get(client, "/authorize?code=X&state="+url.QueryEscape(state))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	require.Contains(t, body, `{"errcode":"1001","message":"code expired"}`)
	require.Empty(t, h.sessionCookie(client))
}

func TestAuthorize_ProviderErrorStatus(t *testing.T) {
	h := newHarness(t, nil)
	h.idp.handle("/accesstoken", http.StatusUnauthorized, `invalid client`)

	client := h.browser()
	state := h.beginLogin(client)
	resp, body := h.get(client, "/authorize?code=X&state="+url.QueryEscape(state))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body, "invalid client")
}

func TestAuthorize_ProviderReportedError(t *testing.T) {
	h := newHarness(t, nil)

	resp, body := h.get(h.browser(), "/authorize?error=access_denied&error_description=user+cancelled")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body, "access_denied")
	require.Contains(t, body, "user cancelled")
	require.Empty(t, h.idp.calls("/accesstoken"))
}

func TestAuthorize_RejectsBadState(t *testing.T) {
	h := newHarness(t, nil)
	h.idp.handle("/accesstoken", http.StatusOK, `{"access_token":"A1"}`)

	t.Run("missing", func(t *testing.T) {
		client := h.browser()
		h.beginLogin(client)
		resp, _ := h.get(client, "/authorize?code=X")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("tampered", func(t *testing.T) {
		client := h.browser()
		state := h.beginLogin(client)
		i := len(state) - 5
		replacement := "A"
		if state[i] == 'A' {
			replacement = "B"
		}
		tampered := state[:i] + replacement + state[i+1:]
		resp, _ := h.get(client, "/authorize?code=X&state="+url.QueryEscape(tampered))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("other browser", func(t *testing.T) {
		state := h.beginLogin(h.browser())
		resp, _ := h.get(h.browser(), "/authorize?code=X&state="+url.QueryEscape(state))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("expired", func(t *testing.T) {
		client := h.browser()
		state := h.beginLogin(client)
		h.clock.Advance(h.config.GetStateTTL() + time.Second)
		resp, _ := h.get(client, "/authorize?code=X&state="+url.QueryEscape(state))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	require.Empty(t, h.idp.calls("/accesstoken"))

	t.Run("replayed", func(t *testing.T) {
		client := h.browser()
		state := h.beginLogin(client)
		// Keep the flow cookie around for the replay
		u, _ := url.Parse(h.relay.URL + "/authorize")
		saved := client.Jar.Cookies(u)

		resp, _ := h.get(client, "/authorize?code=X&state="+url.QueryEscape(state))
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)

		client.Jar.SetCookies(u, saved)
		resp, _ = h.get(client, "/authorize?code=X&state="+url.QueryEscape(state))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Len(t, h.idp.calls("/accesstoken"), 1)
	})
}

func TestProfile_WithoutSessionRedirects(t *testing.T) {
	h := newHarness(t, nil)

	resp, _ := h.get(h.browser(), "/profile")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
	require.Empty(t, h.idp.calls("/userinfo"))
}

func TestProfile_ProviderFailure(t *testing.T) {
	h := newHarness(t, nil)
	h.idp.handle("/accesstoken", http.StatusOK, `{"access_token":"A1"}`)
	h.idp.handle("/userinfo", http.StatusUnauthorized, `{"error":"token expired"}`)

	client := h.browser()
	h.login(client)

	resp, body := h.get(client, "/profile")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body, `{"error":"token expired"}`)
	require.Len(t, h.idp.calls("/refreshtoken"), 0)
}

func TestRefresh_WithoutRefreshToken(t *testing.T) {
	h := newHarness(t, nil)
	h.idp.handle("/accesstoken", http.StatusOK, `{"access_token":"A1"}`)
	h.idp.handle("/refreshtoken", http.StatusOK, `{"access_token":"A2"}`)

	t.Run("anonymous", func(t *testing.T) {
		resp, body := h.get(h.browser(), "/refresh")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, body, "Token refresh failed")
	})

	t.Run("logged in without refresh token", func(t *testing.T) {
		client := h.browser()
		h.login(client)
		resp, body := h.get(client, "/refresh")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, body, "Token refresh failed")
	})

	require.Empty(t, h.idp.calls("/refreshtoken"))
}

func TestRefresh_ProviderFailure(t *testing.T) {
	h := newHarness(t, nil)
	h.idp.handle("/accesstoken", http.StatusOK, `{"access_token":"A1","refresh_token":"R1"}`)
	h.idp.handle("/refreshtoken", http.StatusBadRequest, `refresh token revoked`)

	client := h.browser()
	h.login(client)

	resp, body := h.get(client, "/refresh")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "Refresh failed")
	require.Contains(t, body, "refresh token revoked")

	sess, err := h.store.Get(t.Context(), h.sessionCookie(client))
	require.NoError(t, err)
	require.Equal(t, "A1", sess.AccessToken)
	require.Equal(t, "R1", sess.RefreshToken)
}

func TestRefresh_OverwritesRefreshToken(t *testing.T) {
	h := newHarness(t, nil)
	h.idp.handle("/accesstoken", http.StatusOK, `{"access_token":"A1","refresh_token":"R1"}`)
	h.idp.handle("/refreshtoken", http.StatusOK, `{"access_token":"A2"}`)

	client := h.browser()
	h.login(client)
	h.get(client, "/refresh")

	sess, err := h.store.Get(t.Context(), h.sessionCookie(client))
	require.NoError(t, err)
	require.Equal(t, "A2", sess.AccessToken)
	require.Empty(t, sess.RefreshToken)
}

func TestLogout(t *testing.T) {
	h := newHarness(t, nil)
	h.idp.handle("/accesstoken", http.StatusOK, `{"access_token":"A1"}`)

	client := h.browser()
	h.login(client)
	id := h.sessionCookie(client)

	resp, _ := h.get(client, "/logout")
	require.Equal(t, http.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	require.Equal(t, h.config.GetLogoutURL(), loc.Scheme+"://"+loc.Host+loc.Path)
	require.Equal(t, "airview_login", loc.Query().Get("clientId"))
	require.Equal(t, h.relay.URL+"/login", loc.Query().Get("redirect"))

	_, err = h.store.Get(t.Context(), id)
	require.Error(t, err)
	require.Empty(t, h.sessionCookie(client))

	resp, _ = h.get(client, "/profile")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
}

func TestLogout_UsesBaseURL(t *testing.T) {
	h := newHarness(t, map[string]string{"BASE_URL": "https://relay.example.com/"})

	resp, _ := h.get(h.browser(), "/logout")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "https://relay.example.com/login", loc.Query().Get("redirect"))
}

func TestPages(t *testing.T) {
	h := newHarness(t, nil)
	client := h.browser()

	for _, path := range []string{"/", "/login"} {
		resp, body := h.get(client, path)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		require.Contains(t, body, `href="/authorize"`, path)
		require.Equal(t, "SAMEORIGIN", resp.Header.Get("X-Frame-Options"))
		require.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	}

	for _, path := range []string{"/welcome", "/index.html"} {
		resp, body := h.get(client, path)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		require.Contains(t, body, "You are not signed in", path)
	}

	resp, body := h.get(client, "/css/site.css")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/css"))
	require.Contains(t, body, ".topbar")

	resp, _ = h.get(client, "/css/missing.css")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = h.get(client, "/does-not-exist")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = h.get(client, "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", body)
}

func TestCORSPreflight(t *testing.T) {
	h := newHarness(t, nil)

	req, err := http.NewRequest(http.MethodOptions, h.relay.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRecoverMiddleware(t *testing.T) {
	h := newHarness(t, nil)
	srv, err := server.New(h.config, provider.New(h.config), nil, nil)
	require.NoError(t, err)

	handler := server.ChainMiddleware(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}, srv.RecoverMiddleware)

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRoutes(t *testing.T) {
	h := newHarness(t, nil)
	srv, err := server.New(h.config, provider.New(h.config), nil, nil)
	require.NoError(t, err)

	require.ElementsMatch(t, []string{
		"GET /{$}",
		"GET /login",
		"GET /authorize",
		"GET /logout",
		"GET /welcome",
		"GET /index.html",
		"GET /profile",
		"GET /refresh",
		"GET /css/{file}",
		"GET /healthz",
	}, srv.Routes())
}

func TestAuthorize_ToleratesOddInformationalFields(t *testing.T) {
	h := newHarness(t, nil)

	for _, body := range []string{
		`{"access_token":"AT","refresh_token":"RT","expires_in":"n/a"}`,
		`{"access_token":"AT","expires_in":true}`,
		`{"access_token":"AT","expires_in":"7200s"}`,
		`{"access_token":"AT","scope":["base.profile"]}`,
	} {
		h.idp.handle("/accesstoken", http.StatusOK, body)

		client := h.browser()
		state := h.beginLogin(client)
		resp, respBody := h.get(client, "/authorize?code=X&state="+url.QueryEscape(state))
		require.Equal(t, http.StatusSeeOther, resp.StatusCode, "%s: %s", body, respBody)
		require.Equal(t, "/welcome", resp.Header.Get("Location"))

		sess, err := h.store.Get(t.Context(), h.sessionCookie(client))
		require.NoError(t, err)
		require.Equal(t, "AT", sess.AccessToken)
	}
}

func TestSession_IdleTimeoutSlidesWhileActive(t *testing.T) {
	h := newHarness(t, map[string]string{"SESSION_MAX_AGE": "1s"})
	h.idp.handle("/accesstoken", http.StatusOK, `{"access_token":"A1"}`)
	h.idp.handle("/userinfo", http.StatusOK, `{"uid":"u1"}`)

	client := h.browser()
	h.login(client)

	for i := 0; i < 3; i++ {
		time.Sleep(600 * time.Millisecond)
		resp, _ := h.get(client, "/profile")
		require.Equal(t, http.StatusOK, resp.StatusCode, "request %d", i)
	}

	time.Sleep(1200 * time.Millisecond)
	resp, _ := h.get(client, "/profile")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
}

func TestLogout_UsesFirstForwardedProto(t *testing.T) {
	h := newHarness(t, nil)

	req, err := http.NewRequest(http.MethodGet, h.relay.URL+"/logout", nil)
	require.NoError(t, err)
	req.Header.Set("X-Forwarded-Proto", "https, http")

	resp, err := h.browser().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	relay, err := url.Parse(h.relay.URL)
	require.NoError(t, err)
	require.Equal(t, "https://"+relay.Host+"/login", loc.Query().Get("redirect"))
}

func TestStaticAssets(t *testing.T) {
	h := newHarness(t, nil)
	client := h.browser()

	req, err := http.NewRequest(http.MethodGet, h.relay.URL+"/css/site.css", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	require.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/css"))

	gz, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	require.Contains(t, string(body), ".topbar")
}
