package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"go-jobmatch-backend/internal/domain"
)

const defaultAPIBaseURL = "https://api.linkedin.com"

// Client implements the LinkedIn OpenID Connect code flow: authorization URL,
// code-for-token exchange, then the userinfo call. It is treated as an opaque
// collaborator; failures surface immediately and are never retried.
type Client struct {
	config     *oauth2.Config
	apiBaseURL string
}

func NewClient(clientID, clientSecret, redirectURI string) *Client {
	return &Client{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://www.linkedin.com/oauth/v2/authorization",
				TokenURL: "https://www.linkedin.com/oauth/v2/accessToken",
				// LinkedIn rejects Basic auth on the token endpoint.
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		apiBaseURL: defaultAPIBaseURL,
	}
}

// NewClientWithEndpoints is used by tests to point the client at stub servers.
func NewClientWithEndpoints(clientID, clientSecret, redirectURI string, endpoint oauth2.Endpoint, apiBaseURL string) *Client {
	c := NewClient(clientID, clientSecret, redirectURI)
	c.config.Endpoint = endpoint
	c.apiBaseURL = strings.TrimRight(apiBaseURL, "/")
	return c
}

func (c *Client) AuthURL() string {
	return c.config.AuthCodeURL("")
}

func (c *Client) Exchange(ctx context.Context, code string) (*domain.FederatedProfile, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("linkedin: code exchange failed: %w", err)
	}

	profile, err := c.userInfo(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("linkedin: userinfo failed: %w", err)
	}
	return profile, nil
}

func (c *Client) userInfo(ctx context.Context, token *oauth2.Token) (*domain.FederatedProfile, error) {
	client := c.config.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/v2/userinfo", nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("userinfo endpoint returned %d: %s", resp.StatusCode, body)
	}

	var profile domain.FederatedProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	if profile.Sub == "" {
		return nil, fmt.Errorf("userinfo response missing sub")
	}
	return &profile, nil
}
