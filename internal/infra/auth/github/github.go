// Package github implements the OAuthProvider interface against the GitHub
// authorization-code flow and REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"padifood/config"
	"padifood/internal/domain/entity"
	"padifood/internal/domain/service"
	"padifood/internal/errors"

	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"
)

const (
	userEndpoint   = "https://api.github.com/user"
	emailsEndpoint = "https://api.github.com/user/emails"
)

// Provider implements service.OAuthProvider for GitHub.
type Provider struct {
	oauthConfig *oauth2.Config
	logger      *slog.Logger
	// apiBaseURL overrides the GitHub API endpoints in tests.
	apiBaseURL string
}

// New is the constructor for the GitHub provider. It fails when any credential
// is missing; callers decide whether that disables the feature or the process.
func New(cfg *config.Config, logger *slog.Logger) (*Provider, error) {
	gh := cfg.GitHubOAuth
	if gh == nil || gh.ClientID == "" || gh.ClientSecret == "" || gh.CallbackURL == "" {
		return nil, errors.New("github oauth config missing required fields")
	}

	return &Provider{
		oauthConfig: &oauth2.Config{
			ClientID:     gh.ClientID,
			ClientSecret: gh.ClientSecret,
			RedirectURL:  gh.CallbackURL,
			Endpoint:     oauthgithub.Endpoint,
			Scopes:       []string{"user:email"},
		},
		logger: logger,
	}, nil
}

// Provider returns the provider identifier.
func (p *Provider) Provider() entity.ProviderType {
	return entity.ProviderTypeGitHub
}

// AuthCodeURL builds the GitHub authorization URL carrying the state token.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(state)
}

// Exchange swaps the authorization code for an access token and fetches the
// authenticated user's profile and email addresses from the GitHub API.
func (p *Provider) Exchange(ctx context.Context, code string) (*service.Profile, error) {
	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "github token exchange failed")
	}

	client := p.oauthConfig.Client(ctx, token)

	var ghUser githubUser
	if err := p.getJSON(ctx, client, p.endpoint(userEndpoint), &ghUser); err != nil {
		return nil, errors.Wrap(err, "failed to fetch github user")
	}
	if ghUser.ID == 0 {
		return nil, errors.New("github user response missing id")
	}

	// The primary profile email can be absent when the user keeps it private;
	// the emails endpoint still lists addresses for the user:email scope.
	var ghEmails []githubEmail
	if err := p.getJSON(ctx, client, p.endpoint(emailsEndpoint), &ghEmails); err != nil {
		p.logger.Warn("failed to fetch github emails, continuing with profile email only",
			slog.Any("error", err))
	}

	emails := make([]service.ProviderEmail, 0, len(ghEmails))
	for _, e := range ghEmails {
		emails = append(emails, service.ProviderEmail{
			Email:    e.Email,
			Verified: e.Verified,
			Primary:  e.Primary,
		})
	}

	profile := &service.Profile{
		Provider:       entity.ProviderTypeGitHub,
		ProviderUserID: strconv.FormatInt(ghUser.ID, 10),
		Login:          ghUser.Login,
		Name:           ghUser.Name,
		Email:          ghUser.Email,
		Emails:         emails,
		AvatarURL:      ghUser.AvatarURL,
	}

	p.logger.Info("github profile fetched",
		slog.String("provider_user_id", profile.ProviderUserID),
		slog.String("login", profile.Login),
		slog.Int("emails", len(profile.Emails)))

	return profile, nil
}

func (p *Provider) getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}

func (p *Provider) endpoint(defaultURL string) string {
	if p.apiBaseURL == "" {
		return defaultURL
	}

	switch defaultURL {
	case userEndpoint:
		return fmt.Sprintf("%s/user", p.apiBaseURL)
	case emailsEndpoint:
		return fmt.Sprintf("%s/user/emails", p.apiBaseURL)
	default:
		return defaultURL
	}
}

// githubUser mirrors the fields we consume from GET /user.
type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// githubEmail mirrors one entry of GET /user/emails.
type githubEmail struct {
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
	Primary  bool   `json:"primary"`
}
