package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/service"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
	"github.com/aussiebroadwan/gymdesk/pkg/httpx"
	"github.com/aussiebroadwan/gymdesk/pkg/jwtx"
	"github.com/aussiebroadwan/gymdesk/pkg/slogx"

	_ "github.com/aussiebroadwan/gymdesk/api/gym" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeyRing
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	LoginService        *service.LoginService
	MFAService          *service.MFAService
	AdminService        *service.AdminService
	MemberService       *service.MemberService
	PackageService      *service.PackageService
	BillingService      *service.BillingService
	NotificationService *service.NotificationService
	ReportService       *service.ReportService
	ShopService         *service.ShopService
}

func NewRouter(keys *jwtx.KeyRing, buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAdmins()
	r.registerMFA()
	r.registerMembers()
	r.registerPackages()
	r.registerBills()
	r.registerNotifications()
	r.registerReports()
	r.registerStore()
	r.registerMemberPortal()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Gymdesk API
//	@version		0.1.0
//	@description	Gym management API with an admin (gym owner) portal and a member portal.
//	@description
//	@description				Sign-in is passwordless: request a link, then exchange its token for a session.
//	@description				Sessions are EdDSA-signed JWTs verifiable with the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/gymdesk
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// admin wraps h for admin sessions; limit applies per subject.
func (r *Router) admin(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.keys.Verifier),
		httpx.RequireAnyScope(service.ScopeAdmin),
		httpx.RateLimitByUser(limit),
	)
}

// member wraps h for member sessions. Tokens of members who have since been
// suspended or deleted stop working before they expire.
func (r *Router) member(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.keys.Verifier),
		httpx.RequireAnyScope(service.ScopeMember),
		r.activeMember,
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) activeMember(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		err := r.MemberService.CheckSession(ctx, httpx.SubjectFromContext(ctx), httpx.TenantFromContext(ctx))
		if err != nil {
			slogx.FromContext(ctx).Info("member session rejected", "err", err)
			writeError(w, req, err)
			return
		}
		next.ServeHTTP(w, req)
	})
}

func (r *Router) registerAuth() {
	h := &AuthHandler{LoginService: r.LoginService}

	// POST /auth/link - strict rate limit by IP (sends e-mail)
	r.Mux.Handle("POST /v1/auth/link",
		httpx.Chain(http.HandlerFunc(h.HandleRequestLink),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/exchange - moderate rate limit by IP, tokens are 256 bit
	r.Mux.Handle("POST /v1/auth/exchange",
		httpx.Chain(http.HandlerFunc(h.HandleExchange),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /session - either portal
	r.Mux.Handle("GET /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleSession),
			httpx.AuthnMiddleware(r.keys.Verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerAdmins() {
	h := &AdminHandler{AdminService: r.AdminService}

	// POST /admins - very strict rate limit by IP (operator bootstrap)
	r.Mux.Handle("POST /v1/admins",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/admin/profile", r.admin(h.HandleGetProfile, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/admin/profile", r.admin(h.HandleUpdateProfile, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/admin/gym", r.admin(h.HandleGetGym, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/admin/gym", r.admin(h.HandleUpdateGym, httpx.ModerateLimit))
}

func (r *Router) registerMFA() {
	h := &MFAHandler{MFAService: r.MFAService}

	// Code checks are strict to slow down TOTP guessing
	r.Mux.Handle("POST /v1/admin/mfa/totp/enroll", r.admin(h.HandleEnroll, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/admin/mfa/totp/verify", r.admin(h.HandleVerify, httpx.StrictLimit))
	r.Mux.Handle("POST /v1/admin/mfa/totp/disable", r.admin(h.HandleDisable, httpx.StrictLimit))
	r.Mux.Handle("POST /v1/admin/mfa/backup-codes", r.admin(h.HandleRegenerateBackupCodes, httpx.StrictLimit))
}

func (r *Router) registerMembers() {
	h := &MembersHandler{MemberService: r.MemberService}

	r.Mux.Handle("GET /v1/admin/members", r.admin(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/admin/members", r.admin(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/admin/members/{id}", r.admin(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/admin/members/{id}", r.admin(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/admin/members/{id}", r.admin(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerPackages() {
	h := &PackagesHandler{PackageService: r.PackageService}

	r.Mux.Handle("GET /v1/admin/packages", r.admin(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/admin/packages", r.admin(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/admin/packages/{id}", r.admin(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/admin/packages/{id}", r.admin(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerBills() {
	h := &BillsHandler{BillingService: r.BillingService}

	r.Mux.Handle("GET /v1/admin/bills", r.admin(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/admin/bills", r.admin(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/admin/bills/{id}/status", r.admin(h.HandleUpdateStatus, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/admin/bills/{id}/receipt", r.admin(h.HandleReceipt, httpx.LenientLimit))
}

func (r *Router) registerNotifications() {
	h := &NotificationsHandler{NotificationService: r.NotificationService}

	// Sending fans out e-mail to every recipient
	r.Mux.Handle("POST /v1/admin/notifications", r.admin(h.HandleSend, httpx.StrictLimit))
	r.Mux.Handle("GET /v1/admin/notifications", r.admin(h.HandleListSent, httpx.LenientLimit))
}

func (r *Router) registerReports() {
	h := &ReportsHandler{ReportService: r.ReportService}

	r.Mux.Handle("GET /v1/admin/dashboard", r.admin(h.HandleDashboard, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/admin/reports/{name}", r.admin(h.HandleNamed, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/admin/reports/custom", r.admin(h.HandleCustom, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/admin/reports/export", r.admin(h.HandleExport, httpx.ModerateLimit))
}

func (r *Router) registerStore() {
	h := &StoreHandler{ShopService: r.ShopService}

	r.Mux.Handle("GET /v1/admin/products", r.admin(h.HandleListProducts, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/admin/products", r.admin(h.HandleCreateProduct, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/admin/products/{id}", r.admin(h.HandleUpdateProduct, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/admin/products/{id}", r.admin(h.HandleDeleteProduct, httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/admin/orders", r.admin(h.HandleListOrders, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/admin/orders", r.admin(h.HandleCreateOrder, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/admin/orders/{id}", r.admin(h.HandleUpdateOrder, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/admin/orders/{id}/status", r.admin(h.HandleUpdateOrderStatus, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/admin/orders/{id}", r.admin(h.HandleDeleteOrder, httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/admin/store/analytics", r.admin(h.HandleAnalytics, httpx.LenientLimit))
}

func (r *Router) registerMemberPortal() {
	h := &PortalHandler{
		MemberService:       r.MemberService,
		BillingService:      r.BillingService,
		NotificationService: r.NotificationService,
		ReportService:       r.ReportService,
		ShopService:         r.ShopService,
	}

	r.Mux.Handle("GET /v1/member/profile", r.member(h.HandleGetProfile, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/member/profile", r.member(h.HandleUpdateProfile, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/member/dashboard", r.member(h.HandleDashboard, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/member/bills", r.member(h.HandleBills, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/member/receipts", r.member(h.HandleReceipts, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/member/receipts/{id}", r.member(h.HandleReceipt, httpx.LenientLimit))

	r.Mux.Handle("GET /v1/member/notifications", r.member(h.HandleNotifications, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/member/notifications/{id}/read", r.member(h.HandleMarkRead, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/member/notifications/read-all", r.member(h.HandleMarkAllRead, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/member/notifications/{id}", r.member(h.HandleDeleteNotification, httpx.LenientLimit))

	r.Mux.Handle("GET /v1/member/products", r.member(h.HandleProducts, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/member/orders", r.member(h.HandleOrders, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/member/orders", r.member(h.HandlePlaceOrder, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
