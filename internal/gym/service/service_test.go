package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/mail"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store/drivers/sqlite"
	"github.com/aussiebroadwan/gymdesk/pkg/cryptox"
	"github.com/aussiebroadwan/gymdesk/pkg/jwtx"
)

// testClock is a settable clock shared by every service in a test env.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	ctx   context.Context
	store *sqlite.Store
	mail  *mail.Recorder
	keys  *jwtx.KeyRing
	clock *testClock

	admins   *AdminService
	members  *MemberService
	packages *PackageService
	billing  *BillingService
	notify   *NotificationService
	reports  *ReportService
	shop     *ShopService
	mfa      *MFAService
	login    *LoginService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvAt(t, sqlite.MemoryDSN)
}

// newTestEnvOnDisk backs the env with a WAL database file so concurrent
// transactions contend the way they do in production.
func newTestEnvOnDisk(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvAt(t, sqlite.FileDSN(filepath.Join(t.TempDir(), "gym.db")))
}

func newTestEnvAt(t *testing.T, dsn string) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	keys, err := jwtx.NewKeyRing(pemKey, "https://gym.test", []string{"gymdesk"})
	require.NoError(t, err)

	clk := &testClock{now: time.Now().UTC().Truncate(time.Second)}
	clock := Clock(clk.Now)
	rec := &mail.Recorder{}
	mfa := &MFAService{Store: st, Issuer: "Gymdesk"}

	return &testEnv{
		ctx:      context.Background(),
		store:    st,
		mail:     rec,
		keys:     keys,
		clock:    clk,
		admins:   &AdminService{Store: st, BootstrapToken: "let-me-in", Clock: clock},
		members:  &MemberService{Store: st, Clock: clock},
		packages: &PackageService{Store: st, Clock: clock},
		billing:  &BillingService{Store: st, Clock: clock},
		notify:   &NotificationService{Store: st, Mailer: rec, Clock: clock},
		reports:  &ReportService{Store: st, Clock: clock},
		shop:     &ShopService{Store: st, Clock: clock},
		mfa:      mfa,
		login: &LoginService{
			Store:   st,
			Mailer:  rec,
			Keys:    keys,
			MFA:     mfa,
			BaseURL: "https://gym.test/",
			Clock:   clock,
		},
	}
}

func (e *testEnv) admin(t *testing.T, email string) domain.Admin {
	t.Helper()
	a, err := e.admins.CreateAdmin(e.ctx, CreateAdminParams{Email: email, Name: "Owner", GymName: "Iron Temple"})
	require.NoError(t, err)
	return a
}

func (e *testEnv) member(t *testing.T, adminID, email string) domain.Member {
	t.Helper()
	m, err := e.members.Add(e.ctx, adminID, MemberInput{Name: "Member " + email, Email: email})
	require.NoError(t, err)
	return m
}

func (e *testEnv) pkg(t *testing.T, adminID, name, price string) domain.Package {
	t.Helper()
	p, err := e.packages.Create(e.ctx, adminID, PackageInput{
		Name:         name,
		Price:        decimal.RequireFromString(price),
		BillingCycle: "monthly",
	})
	require.NoError(t, err)
	return p
}

func (e *testEnv) product(t *testing.T, adminID, name, price string, stock int) domain.Product {
	t.Helper()
	p, err := e.shop.CreateProduct(e.ctx, adminID, ProductInput{
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	})
	require.NoError(t, err)
	return p
}

func ptr[T any](v T) *T { return &v }
