package gymsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client calls the unauthenticated endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetLiveness calls GET /livez.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}
	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness calls GET /readyz. A not-ready server answers 503 and is
// returned as an *APIError.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return nil, err
	}
	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, "/.well-known/jwks.json", nil, nil)
	if err != nil {
		return nil, err
	}
	var out JWKSResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterAdmin creates a gym owner using the bootstrap token.
func (c *Client) RegisterAdmin(
	ctx context.Context,
	bootstrapToken string,
	req CreateAdminRequest,
) (*AdminProfile, error) {
	resp, err := c.do(ctx, http.MethodPost, "/v1/admins", req, map[string]string{
		"X-Bootstrap-Token": bootstrapToken,
	})
	if err != nil {
		return nil, err
	}
	var out AdminProfile
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestLink asks the server to e-mail a sign-in link. The server accepts
// unknown addresses too, so a nil error says nothing about the account.
func (c *Client) RequestLink(ctx context.Context, email, portal string) error {
	resp, err := c.do(ctx, http.MethodPost, "/v1/auth/link", RequestLinkRequest{
		Email: email,
		Type:  portal,
	}, nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusAccepted)
}

// Exchange trades a sign-in token (and the admin's one-time code, if MFA
// is enabled) for a Session.
func (c *Client) Exchange(ctx context.Context, token, portal, otp string) (*Session, error) {
	resp, err := c.do(ctx, http.MethodPost, "/v1/auth/exchange", ExchangeRequest{
		Token: token,
		Type:  portal,
		OTP:   otp,
	}, nil)
	if err != nil {
		return nil, err
	}
	var out SessionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, &out), nil
}

// SessionFromToken wraps an access token obtained elsewhere.
func (c *Client) SessionFromToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}
