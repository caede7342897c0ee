package gymsdk

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"
)

// ErrSessionExpired is returned before sending a request with a token the
// server would reject anyway.
var ErrSessionExpired = errors.New("gymdesk: session expired")

// Session is an authenticated portal session. Sessions are not refreshed:
// when one expires the user requests a new sign-in link.
type Session struct {
	client *Client

	accessToken string
	expiresAt   time.Time
	User        SessionUser
}

func newSession(client *Client, resp *SessionResponse) *Session {
	return &Session{
		client:      client,
		accessToken: resp.AccessToken,
		expiresAt:   time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		User:        resp.User,
	}
}

// AccessToken returns the bearer token.
func (s *Session) AccessToken() string { return s.accessToken }

func (s *Session) IsAdmin() bool { return s.User.Type == PortalAdmin }

func (s *Session) do(ctx context.Context, method, path string, in any) (*http.Response, error) {
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return nil, ErrSessionExpired
	}
	return s.client.do(ctx, method, path, in, map[string]string{
		"Authorization": "Bearer " + s.accessToken,
	})
}

// call sends in (if any) and decodes the response into out (if any).
func (s *Session) call(ctx context.Context, method, path string, in, out any, expectedStatus int) error {
	resp, err := s.do(ctx, method, path, in)
	if err != nil {
		return err
	}
	if out == nil {
		return checkStatus(resp, expectedStatus)
	}
	return decodeJSON(resp, out, expectedStatus)
}

// Whoami calls GET /v1/session.
func (s *Session) Whoami(ctx context.Context) (*SessionUser, error) {
	var out SessionUser
	if err := s.call(ctx, http.MethodGet, "/v1/session", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func escape(id string) string { return url.PathEscape(id) }
