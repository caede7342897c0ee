package gym_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
)

// TestMembershipBillingCycle walks a member from sign-up to a paid bill
// and checks both portals see the receipt.
func TestMembershipBillingCycle(t *testing.T) {
	g := setupGymContainer(t)
	ctx := t.Context()
	owner := g.registerOwner(t)

	member, err := owner.CreateMember(ctx, gymsdk.CreateMemberRequest{
		Name:  "Sam Lifter",
		Email: "sam@irontemple.test",
		Phone: "0400 000 000",
	})
	require.NoError(t, err)
	require.Equal(t, "active", member.Status)

	pkg, err := owner.CreatePackage(ctx, gymsdk.CreatePackageRequest{
		Name:         "Quarterly",
		Price:        decimal.RequireFromString("4200"),
		BillingCycle: "quarterly",
		Features:     []string{"Gym floor", "Classes"},
	})
	require.NoError(t, err)

	bill, err := owner.CreateBill(ctx, gymsdk.CreateBillRequest{
		MemberID:  member.ID,
		PackageID: &pkg.ID,
		Amount:    pkg.Price,
		DueDate:   time.Now().AddDate(0, 0, 14),
	})
	require.NoError(t, err)
	require.Equal(t, "pending", bill.Status)

	dash, err := owner.AdminDashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, dash.TotalMembers)
	require.Equal(t, 1, dash.PendingBills)

	paid, err := owner.UpdateBillStatus(ctx, bill.ID, gymsdk.UpdateBillStatusRequest{
		Status:        "paid",
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	require.True(t, paid.Receipt)

	receipt, err := owner.GetBillReceipt(ctx, bill.ID)
	require.NoError(t, err)
	require.Equal(t, gymName, receipt.Gym.Name)
	require.Equal(t, "Quarterly", receipt.PackageName)
	require.True(t, receipt.Amount.Equal(pkg.Price))

	session := g.signIn(t, gymsdk.PortalMember, "sam@irontemple.test", "")

	profile, err := session.GetMemberProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, gymName, profile.GymName)

	bills, err := session.MyBills(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	require.True(t, bills[0].Receipt)

	mine, err := session.GetReceipt(ctx, *bills[0].ReceiptID)
	require.NoError(t, err)
	require.Equal(t, receipt.ReceiptNo, mine.ReceiptNo)

	notes, err := session.MyNotifications(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, notes)

	updated, err := session.MarkAllNotificationsRead(ctx)
	require.NoError(t, err)
	require.EqualValues(t, len(notes), updated)
}

// TestTenantIsolation verifies one gym cannot read another gym's members.
func TestTenantIsolation(t *testing.T) {
	g := setupGymContainer(t)
	ctx := t.Context()
	owner := g.registerOwner(t)

	_, err := g.client.RegisterAdmin(ctx, bootstrapToken, gymsdk.CreateAdminRequest{
		Email:   "rival@othergym.test",
		Name:    "Rival",
		GymName: "Other Gym",
	})
	require.NoError(t, err)
	rival := g.signIn(t, gymsdk.PortalAdmin, "rival@othergym.test", "")

	m, err := owner.CreateMember(ctx, gymsdk.CreateMemberRequest{Name: "Sam", Email: "sam@irontemple.test"})
	require.NoError(t, err)

	_, err = rival.GetMember(ctx, m.ID)
	assertStatus(t, err, http.StatusNotFound, "cross-tenant member read")

	members, err := rival.ListMembers(ctx)
	require.NoError(t, err)
	require.Empty(t, members)
}

// TestMemberCannotUseAdminRoutes verifies portal scopes.
func TestMemberCannotUseAdminRoutes(t *testing.T) {
	g := setupGymContainer(t)
	ctx := t.Context()
	owner := g.registerOwner(t)

	_, err := owner.CreateMember(ctx, gymsdk.CreateMemberRequest{Name: "Sam", Email: "sam@irontemple.test"})
	require.NoError(t, err)
	member := g.signIn(t, gymsdk.PortalMember, "sam@irontemple.test", "")

	_, err = member.ListMembers(ctx)
	assertStatus(t, err, http.StatusForbidden, "member listing members")

	_, err = member.AdminDashboard(ctx)
	assertStatus(t, err, http.StatusForbidden, "member reading admin dashboard")

	_, err = owner.MemberDashboard(ctx)
	assertStatus(t, err, http.StatusForbidden, "admin reading member dashboard")
}
