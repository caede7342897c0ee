package gym_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
)

// TestOwnerRegistration covers the bootstrap endpoint and its guards.
func TestOwnerRegistration(t *testing.T) {
	g := setupGymContainer(t)
	ctx := t.Context()

	_, err := g.client.RegisterAdmin(ctx, "wrong-token", gymsdk.CreateAdminRequest{Email: ownerEmail, Name: ownerName})
	assertStatus(t, err, http.StatusUnauthorized, "wrong bootstrap token")

	owner := g.registerOwner(t)

	me, err := owner.Whoami(ctx)
	require.NoError(t, err)
	require.Equal(t, gymsdk.PortalAdmin, me.Type)
	require.Equal(t, ownerEmail, me.Email)

	gym, err := owner.GetGym(ctx)
	require.NoError(t, err)
	require.Equal(t, gymName, gym.Name)

	_, err = g.client.RegisterAdmin(ctx, bootstrapToken, gymsdk.CreateAdminRequest{Email: ownerEmail, Name: ownerName})
	assertStatus(t, err, http.StatusConflict, "duplicate owner")
}

// TestSignInLinkIsSingleUse verifies a link cannot be exchanged twice.
func TestSignInLinkIsSingleUse(t *testing.T) {
	g := setupGymContainer(t)
	ctx := t.Context()
	g.registerOwner(t)

	token := g.mintToken(t, "admin", ownerEmail)
	_, err := g.client.Exchange(ctx, token, gymsdk.PortalAdmin, "")
	require.NoError(t, err)

	_, err = g.client.Exchange(ctx, token, gymsdk.PortalAdmin, "")
	require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeInvalidGrant), "second exchange: %v", err)

	// A link minted for one portal does not open the other.
	token = g.mintToken(t, "admin", ownerEmail)
	_, err = g.client.Exchange(ctx, token, gymsdk.PortalMember, "")
	require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeInvalidGrant))
}

// TestRequestLinkDoesNotRevealAccounts verifies unknown addresses are
// accepted like known ones.
func TestRequestLinkDoesNotRevealAccounts(t *testing.T) {
	g := setupGymContainer(t)
	ctx := t.Context()
	g.registerOwner(t)

	require.NoError(t, g.client.RequestLink(ctx, ownerEmail, gymsdk.PortalAdmin))
	require.NoError(t, g.client.RequestLink(ctx, "stranger@irontemple.test", gymsdk.PortalAdmin))
	require.NoError(t, g.client.RequestLink(ctx, "stranger@irontemple.test", gymsdk.PortalMember))
}

// TestOwnerMFA enrols TOTP and checks that sign-in then needs a code.
func TestOwnerMFA(t *testing.T) {
	g := setupGymContainer(t)
	ctx := t.Context()
	owner := g.registerOwner(t)

	enroll, err := owner.EnrollTOTP(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, enroll.OTPAuthURL)

	code, err := totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	backup, err := owner.VerifyTOTP(ctx, code)
	require.NoError(t, err)
	require.NotEmpty(t, backup.BackupCodes)

	token := g.mintToken(t, "admin", ownerEmail)
	_, err = g.client.Exchange(ctx, token, gymsdk.PortalAdmin, "")
	require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeMFARequired), "exchange without code: %v", err)

	_, err = g.client.Exchange(ctx, token, gymsdk.PortalAdmin, "000000")
	require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeInvalidGrant), "exchange with wrong code: %v", err)

	token = g.mintToken(t, "admin", ownerEmail)
	session, err := g.client.Exchange(ctx, token, gymsdk.PortalAdmin, backup.BackupCodes[0])
	require.NoError(t, err)

	profile, err := session.GetAdminProfile(ctx)
	require.NoError(t, err)
	require.True(t, profile.MFAEnabled)
}

// TestSuspendedMemberCannotSignIn verifies suspension blocks the member portal.
func TestSuspendedMemberCannotSignIn(t *testing.T) {
	g := setupGymContainer(t)
	ctx := t.Context()
	owner := g.registerOwner(t)

	m, err := owner.CreateMember(ctx, gymsdk.CreateMemberRequest{Name: "Jo", Email: "jo@irontemple.test"})
	require.NoError(t, err)

	token := g.mintToken(t, "member", "jo@irontemple.test")

	suspended := "suspended"
	_, err = owner.UpdateMember(ctx, m.ID, gymsdk.UpdateMemberRequest{Status: &suspended})
	require.NoError(t, err)

	_, err = g.client.Exchange(ctx, token, gymsdk.PortalMember, "")
	assertStatus(t, err, http.StatusForbidden, "suspended member exchange")
}
