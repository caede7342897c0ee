package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/mail"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
	"github.com/aussiebroadwan/gymdesk/pkg/cryptox"
	"github.com/aussiebroadwan/gymdesk/pkg/idx"
	"github.com/aussiebroadwan/gymdesk/pkg/jwtx"
	"github.com/aussiebroadwan/gymdesk/pkg/slogx"
)

const (
	DefaultLoginTokenTTL = time.Hour

	ScopeAdmin  = "admin"
	ScopeMember = "member"
)

// LoginService runs the passwordless sign-in flow: mint a single-use link,
// mail it, and exchange it for a signed session.
type LoginService struct {
	Store  store.Store
	Mailer mail.Sender
	Keys   *jwtx.KeyRing
	MFA    *MFAService

	// BaseURL is the front end origin; links point at BaseURL/signin.
	BaseURL    string
	TokenTTL   time.Duration
	SessionTTL time.Duration
	Clock      Clock
}

// Account is the identity a sign-in link resolves to.
type Account struct {
	ID       string
	TenantID string
	Email    string
	Name     string
	Portal   domain.Portal
}

// Session is an issued access token and who it belongs to.
type Session struct {
	AccessToken string
	ExpiresIn   time.Duration
	Claims      jwtx.Claims
	Account     Account
}

func (s *LoginService) tokenTTL() time.Duration {
	if s.TokenTTL <= 0 {
		return DefaultLoginTokenTTL
	}
	return s.TokenTTL
}

func (s *LoginService) sessionTTL() time.Duration {
	if s.SessionTTL <= 0 {
		return jwtx.DefaultSessionTTL
	}
	return s.SessionTTL
}

// lookup resolves an e-mail to an account on the given portal.
func (s *LoginService) lookup(ctx context.Context, st store.Store, portal domain.Portal, email string) (Account, error) {
	switch portal {
	case domain.PortalAdmin:
		a, err := st.Admins().GetAdminByEmail(ctx, email)
		if err != nil {
			return Account{}, err
		}
		return Account{ID: a.ID, TenantID: a.ID, Email: a.Email, Name: a.Name, Portal: portal}, nil
	case domain.PortalMember:
		m, err := st.Members().GetMemberByEmail(ctx, email)
		if err != nil {
			return Account{}, err
		}
		if m.Status == domain.MemberSuspended {
			return Account{}, ErrAccountSuspended
		}
		return Account{ID: m.ID, TenantID: m.AdminID, Email: m.Email, Name: m.Name, Portal: portal}, nil
	}
	return Account{}, invalid("unknown portal %q", portal)
}

// MintLink stores a fresh single-use token for the account and returns the
// sign-in URL. It returns store.ErrNotFound for unknown addresses.
func (s *LoginService) MintLink(ctx context.Context, portal domain.Portal, email string) (string, Account, error) {
	email = normalizeEmail(email)
	if !validEmail(email) {
		return "", Account{}, invalid("a valid email is required")
	}

	acct, err := s.lookup(ctx, s.Store, portal, email)
	if err != nil {
		return "", Account{}, err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", Account{}, err
	}

	now := s.Clock.now()
	err = s.Store.LoginTokens().CreateLoginToken(ctx, domain.LoginToken{
		ID:        idx.NewAt(now).String(),
		TokenHash: cryptox.FingerprintToken(token),
		Portal:    portal,
		SubjectID: acct.ID,
		Email:     acct.Email,
		ExpiresAt: now.Add(s.tokenTTL()),
		CreatedAt: now,
	})
	if err != nil {
		return "", Account{}, fmt.Errorf("store login token: %w", err)
	}

	q := url.Values{}
	q.Set("token", token)
	q.Set("type", portal.LinkType())
	return strings.TrimRight(s.BaseURL, "/") + "/signin?" + q.Encode(), acct, nil
}

// RequestLink mails a sign-in link. Unknown and suspended accounts are
// logged and otherwise treated as success so the caller learns nothing.
func (s *LoginService) RequestLink(ctx context.Context, portal domain.Portal, email string) error {
	log := slogx.FromContext(ctx)

	link, acct, err := s.MintLink(ctx, portal, email)
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, ErrAccountSuspended):
		log.Info("sign-in link not sent", slog.String("portal", string(portal)), slog.String("reason", err.Error()))
		return nil
	case err != nil:
		return err
	}

	msg, err := mail.LoginLink(acct.Email, portal.LinkType(), link, s.tokenTTL().String())
	if err != nil {
		return err
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		// The token is stored; an operator can still mint a new link.
		log.Error("failed to send sign-in mail", slog.String("account_id", acct.ID), slog.Any("error", err))
		return nil
	}
	log.Info("sign-in link sent", slog.String("portal", string(portal)), slog.String("account_id", acct.ID))
	return nil
}

// Exchange consumes a sign-in token and issues a session. Admins with MFA
// enabled must pass a TOTP or backup code: a missing code leaves the link
// usable, a wrong one burns it.
func (s *LoginService) Exchange(ctx context.Context, portal domain.Portal, token, otp string) (Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}, ErrLoginTokenInvalid
	}
	now := s.Clock.now()

	var (
		acct      Account
		amr       = []string{"link"}
		badSecond bool
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		lt, err := tx.LoginTokens().ConsumeLoginToken(ctx, cryptox.FingerprintToken(token), portal, now)
		if errors.Is(err, store.ErrNotFound) {
			return ErrLoginTokenInvalid
		}
		if err != nil {
			return err
		}

		switch portal {
		case domain.PortalAdmin:
			a, err := tx.Admins().GetAdminByID(ctx, lt.SubjectID)
			if err != nil {
				return mapMissing(err, ErrLoginTokenInvalid)
			}
			acct = Account{ID: a.ID, TenantID: a.ID, Email: a.Email, Name: a.Name, Portal: portal}
			if !a.HasMFA() {
				return nil
			}
			if strings.TrimSpace(otp) == "" {
				return ErrMFARequired
			}
			method, ok, err := s.MFA.checkSecondFactor(ctx, tx, a, otp)
			if err != nil {
				return err
			}
			if !ok {
				badSecond = true
				return nil
			}
			amr = append(amr, method, "mfa")
		case domain.PortalMember:
			m, err := tx.Members().GetMemberByID(ctx, lt.SubjectID)
			if err != nil {
				return mapMissing(err, ErrLoginTokenInvalid)
			}
			if m.Status == domain.MemberSuspended {
				return ErrAccountSuspended
			}
			acct = Account{ID: m.ID, TenantID: m.AdminID, Email: m.Email, Name: m.Name, Portal: portal}
		}
		return nil
	})
	if err != nil {
		return Session{}, err
	}
	if badSecond {
		slogx.FromContext(ctx).Warn("sign-in rejected: wrong one-time code", slog.String("account_id", acct.ID))
		return Session{}, ErrInvalidTOTPCode
	}

	scope := ScopeMember
	if portal == domain.PortalAdmin {
		scope = ScopeAdmin
	}
	ttl := s.sessionTTL()
	access, claims, err := s.Keys.IssueSession(jwtx.SessionParams{
		Subject: acct.ID,
		Tenant:  acct.TenantID,
		Email:   acct.Email,
		Name:    acct.Name,
		Scopes:  []string{scope},
		AMR:     amr,
	}, ttl, now)
	if err != nil {
		return Session{}, fmt.Errorf("issue session: %w", err)
	}

	slogx.FromContext(ctx).Info("session issued",
		slog.String("account_id", acct.ID),
		slog.String("portal", string(portal)),
	)
	return Session{AccessToken: access, ExpiresIn: ttl, Claims: claims, Account: acct}, nil
}

// mapMissing swaps store.ErrNotFound for target.
func mapMissing(err, target error) error {
	if errors.Is(err, store.ErrNotFound) {
		return target
	}
	return err
}
