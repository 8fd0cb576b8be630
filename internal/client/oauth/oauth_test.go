package oauth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/apexarenas/internal/client/api"
	"github.com/iudanet/apexarenas/internal/client/authtest"
)

type fakeBackend struct {
	url      string
	err      error
	lastNext string
}

func (f *fakeBackend) StartOAuth(ctx context.Context, next string) (string, error) {
	f.lastNext = next
	return f.url, f.err
}

func TestStart_Backend(t *testing.T) {
	backend := &fakeBackend{url: "https://accounts.google.com/o/oauth2/auth?client_id=x"}
	starter := NewStarter(backend, ProviderConfig{})

	start, err := starter.Start(context.Background(), "/dashboard")
	require.NoError(t, err)
	assert.Equal(t, backend.url, start.URL)
	assert.Empty(t, start.State)
	assert.Equal(t, "/dashboard", backend.lastNext)
}

func TestStart_Backend_Errors(t *testing.T) {
	tests := []struct {
		name    string
		backend *fakeBackend
		wantErr error
	}{
		{name: "empty url", backend: &fakeBackend{}, wantErr: ErrNoRedirect},
		{name: "backend error", backend: &fakeBackend{err: errors.New("boom")}},
		{name: "bad scheme", backend: &fakeBackend{url: "javascript:alert(1)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStarter(tt.backend, ProviderConfig{}).Start(context.Background(), "")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestStart_Backend_FakeServer(t *testing.T) {
	srv := authtest.NewServer(t)
	client, err := api.NewClient(srv.URL)
	require.NoError(t, err)

	start, err := NewStarter(client, ProviderConfig{}).Start(context.Background(), "/arena")
	require.NoError(t, err)
	assert.Contains(t, start.URL, "state=")
	assert.Equal(t, 1, srv.Calls(authtest.RouteOAuthStart))
}

func TestStart_ProviderExplicitEndpoints(t *testing.T) {
	starter := NewStarter(nil, ProviderConfig{
		ClientID:    "apex-cli",
		AuthURL:     "https://idp.example.com/authorize",
		TokenURL:    "https://idp.example.com/token",
		RedirectURL: "http://127.0.0.1:8765/callback",
	})

	start, err := starter.Start(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, start.State)
	require.NotEmpty(t, start.Verifier)

	u, err := url.Parse(start.URL)
	require.NoError(t, err)
	assert.Equal(t, "idp.example.com", u.Host)

	q := u.Query()
	assert.Equal(t, "apex-cli", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, start.State, q.Get("state"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("code_challenge"))
	assert.NotEqual(t, start.Verifier, q.Get("code_challenge"))
	assert.Equal(t, "openid profile email", q.Get("scope"))
	assert.Equal(t, "http://127.0.0.1:8765/callback", q.Get("redirect_uri"))

	// Каждый запуск - новый state и verifier
	again, err := starter.Start(context.Background(), "")
	require.NoError(t, err)
	assert.NotEqual(t, start.State, again.State)
	assert.NotEqual(t, start.Verifier, again.Verifier)
}

func TestStart_ProviderNeedsEndpoint(t *testing.T) {
	_, err := NewStarter(nil, ProviderConfig{ClientID: "apex-cli"}).Start(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issuer or auth_url")
}

func TestStart_ProviderDiscovery(t *testing.T) {
	var issuer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/openid-configuration" {
			http.NotFound(w, r)
			return
		}
		authtest.WriteJSON(w, http.StatusOK, map[string]any{
			"issuer":                                issuer,
			"authorization_endpoint":                issuer + "/oauth2/authorize",
			"token_endpoint":                        issuer + "/oauth2/token",
			"jwks_uri":                              issuer + "/.well-known/jwks.json",
			"id_token_signing_alg_values_supported": []string{"RS256"},
		})
	}))
	defer srv.Close()
	issuer = srv.URL

	starter := NewStarter(nil, ProviderConfig{
		ClientID: "apex-cli",
		Issuer:   issuer,
		Scopes:   []string{"openid"},
	}, WithHTTPClient(srv.Client()))

	start, err := starter.Start(context.Background(), "")
	require.NoError(t, err)

	u, err := url.Parse(start.URL)
	require.NoError(t, err)
	assert.Equal(t, "/oauth2/authorize", u.Path)
	assert.Equal(t, "openid", u.Query().Get("scope"))
}

func TestStart_ProviderDiscoveryFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewStarter(nil, ProviderConfig{ClientID: "apex-cli", Issuer: srv.URL}).Start(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create OIDC provider")
}
