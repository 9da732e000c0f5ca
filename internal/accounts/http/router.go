package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"

	_ "github.com/aussiebroadwan/accounts/api/accounts" // Swagger docs
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

	store          store.Store
	AuthService    *service.AuthService
	AccountService *service.AccountService
	UserService    *service.UserService
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
	r.registerAccounts()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	// Anything unrouted gets the structured 404 body, not the stdlib page.
	r.Mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "Not found")
	})
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Accounts Service API
//	@version		0.1.0
//	@description	Token-based authentication service: credential verification, HS512-signed access tokens, and opaque single-use refresh tokens with rotation.
//	@description
//	@description				Access tokens are signed with HMAC-SHA512 using a shared secret; there is no public verification endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/accounts
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

func (r *Router) registerAccounts() {
	// POST /authorize - strict rate limit by IP (authentication attempts)
	authorizeHandler := &AuthorizeHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/accounts/authorize",
		httpx.Chain(authorizeHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /revalidate - strict rate limit by IP (token redemption attempts)
	revalidateHandler := &RevalidateHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/accounts/revalidate",
		httpx.Chain(revalidateHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/accounts/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// Authenticated endpoints - lenient rate limit by user
	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedGet := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /v1/users", securedList)
	r.Mux.Handle("GET /v1/users/{id}", securedGet)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
