// Package gymsdk is a Go client for the gymdesk HTTP API.
//
// A Client talks to the public endpoints: health, JWKS, admin bootstrap and
// the passwordless sign-in flow. Exchanging a sign-in link yields a Session
// that carries the bearer token for the admin or member portal.
//
//	c := gymsdk.NewClient("http://localhost:8080")
//	_ = c.RequestLink(ctx, "owner@example.com", gymsdk.PortalAdmin)
//	// token arrives by e-mail
//	s, err := c.Exchange(ctx, token, gymsdk.PortalAdmin, "")
//	members, err := s.ListMembers(ctx)
package gymsdk
