package github

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"padifood/config"
	"padifood/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testGitHubConfig() *config.Config {
	return &config.Config{
		GitHubOAuth: &config.GitHubOAuthConfig{
			ClientID:     "test_client_id",
			ClientSecret: "test_secret",
			CallbackURL:  "http://localhost:8080/auth/github/callback",
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_MissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.GitHubOAuthConfig
	}{
		{name: "nil config", cfg: nil},
		{name: "no client id", cfg: &config.GitHubOAuthConfig{ClientSecret: "s", CallbackURL: "c"}},
		{name: "no client secret", cfg: &config.GitHubOAuthConfig{ClientID: "i", CallbackURL: "c"}},
		{name: "no callback url", cfg: &config.GitHubOAuthConfig{ClientID: "i", ClientSecret: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := New(&config.Config{GitHubOAuth: tt.cfg}, testLogger())

			assert.Error(t, err)
			assert.Nil(t, provider)
		})
	}
}

func TestProvider_AuthCodeURL(t *testing.T) {
	provider, err := New(testGitHubConfig(), testLogger())
	require.NoError(t, err)

	authURL := provider.AuthCodeURL("fresh-state")

	assert.Contains(t, authURL, "https://github.com/login/oauth/authorize")
	assert.Contains(t, authURL, "client_id=test_client_id")
	assert.Contains(t, authURL, "state=fresh-state")
	assert.Contains(t, authURL, "user%3Aemail")
}

func TestProvider_Provider(t *testing.T) {
	provider, err := New(testGitHubConfig(), testLogger())
	require.NoError(t, err)

	assert.Equal(t, entity.ProviderTypeGitHub, provider.Provider())
}

func TestProvider_Exchange(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gho_test_token","token_type":"bearer"}`))
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":583231,"login":"octocat","name":"The Octocat","email":null,"avatar_url":"https://example.com/a.png"}`))
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"email":"octocat@github.com","verified":true,"primary":true},{"email":"spare@github.com","verified":false,"primary":false}]`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	provider, err := New(testGitHubConfig(), testLogger())
	require.NoError(t, err)

	provider.oauthConfig.Endpoint = oauth2.Endpoint{
		AuthURL:  server.URL + "/login/oauth/authorize",
		TokenURL: server.URL + "/login/oauth/access_token",
	}
	provider.apiBaseURL = server.URL

	profile, err := provider.Exchange(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, entity.ProviderTypeGitHub, profile.Provider)
	assert.Equal(t, "583231", profile.ProviderUserID)
	assert.Equal(t, "octocat", profile.Login)
	assert.Equal(t, "The Octocat", profile.Name)
	assert.Empty(t, profile.Email)
	require.Len(t, profile.Emails, 2)
	assert.True(t, profile.Emails[0].Verified)
	assert.True(t, profile.Emails[0].Primary)
	assert.Equal(t, "https://example.com/a.png", profile.AvatarURL)
}

func TestProvider_Exchange_EmailsEndpointDown(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gho_test_token","token_type":"bearer"}`))
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":583231,"login":"octocat","email":"octocat@github.com"}`))
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	provider, err := New(testGitHubConfig(), testLogger())
	require.NoError(t, err)

	provider.oauthConfig.Endpoint = oauth2.Endpoint{
		AuthURL:  server.URL + "/login/oauth/authorize",
		TokenURL: server.URL + "/login/oauth/access_token",
	}
	provider.apiBaseURL = server.URL

	// The emails endpoint failing is not fatal; the profile email survives.
	profile, err := provider.Exchange(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "octocat@github.com", profile.Email)
	assert.Empty(t, profile.Emails)
}

func TestProvider_Exchange_BadCode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad_verification_code", http.StatusUnauthorized)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	provider, err := New(testGitHubConfig(), testLogger())
	require.NoError(t, err)

	provider.oauthConfig.Endpoint = oauth2.Endpoint{
		AuthURL:  server.URL + "/login/oauth/authorize",
		TokenURL: server.URL + "/login/oauth/access_token",
	}
	provider.apiBaseURL = server.URL

	profile, err := provider.Exchange(context.Background(), "bad-code")

	assert.Error(t, err)
	assert.Nil(t, profile)
}
