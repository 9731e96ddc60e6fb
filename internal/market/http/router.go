package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/kolmarket/kolmarket/internal/market/domain"
	"github.com/kolmarket/kolmarket/internal/market/instagram"
	"github.com/kolmarket/kolmarket/internal/market/service"
	"github.com/kolmarket/kolmarket/internal/market/store"
	"github.com/kolmarket/kolmarket/pkg/httpx"
	"github.com/kolmarket/kolmarket/pkg/jwtx"
	"github.com/kolmarket/kolmarket/pkg/slogx"

	_ "github.com/kolmarket/kolmarket/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	UserService     *service.UserService
	KOLService      *service.KOLService
	CampaignService *service.CampaignService
	InviteService   *service.InviteService
	StatsService    *service.StatsService
	Instagram       *instagram.Client
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerKOLs()
	r.registerCampaigns()
	r.registerInvites()
	r.registerInstagram()
	r.registerStats()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			KOL Marketplace API
//	@version		0.1.0
//	@description	Backend for the influencer-marketing marketplace: user accounts, influencer (KOL) profiles,
//	@description	ad campaigns, and the email invitation flow that onboards influencers with consent and a
//	@description	linked Instagram account.
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
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{UserService: r.UserService}

	r.Mux.Handle("POST /v1/auth/register", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("POST /v1/auth/login", http.HandlerFunc(h.HandleLogin))
	r.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerKOLs() {
	h := &KOLsHandler{KOLService: r.KOLService}

	// Reads are public; the marketplace listing is the product's storefront.
	r.Mux.Handle("GET /v1/kols", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("GET /v1/kols/{id}", http.HandlerFunc(h.HandleGet))

	// Writes require the admin role.
	adminOnly := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RoleAdmin),
		)
	}
	r.Mux.Handle("POST /v1/kols", adminOnly(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /v1/kols/{id}", adminOnly(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/kols/{id}", adminOnly(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerCampaigns() {
	h := &CampaignsHandler{CampaignService: r.CampaignService}

	authed := func(next http.Handler) http.Handler {
		return httpx.Chain(next, httpx.AuthnMiddleware(r.verifier))
	}
	r.Mux.Handle("GET /v1/campaigns", authed(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /v1/campaigns", authed(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /v1/campaigns/{id}", authed(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PUT /v1/campaigns/{id}", authed(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/campaigns/{id}", authed(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{InviteService: r.InviteService}

	adminOnly := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RoleAdmin),
		)
	}
	r.Mux.Handle("POST /v1/invites", adminOnly(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /v1/invites", adminOnly(http.HandlerFunc(h.HandleList)))

	// The invitee is not authenticated; the token is the credential.
	r.Mux.Handle("GET /v1/invites/verify/{token}", http.HandlerFunc(h.HandleVerify))
	r.Mux.Handle("POST /v1/invites/complete", http.HandlerFunc(h.HandleComplete))
}

func (r *Router) registerInstagram() {
	h := &InstagramHandler{Client: r.Instagram}

	r.Mux.Handle("GET /v1/instagram/auth-url", http.HandlerFunc(h.HandleAuthURL))
	r.Mux.Handle("POST /v1/instagram/exchange-token", http.HandlerFunc(h.HandleExchangeToken))
}

func (r *Router) registerStats() {
	h := &StatsHandler{StatsService: r.StatsService}

	r.Mux.Handle("GET /v1/stats",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
