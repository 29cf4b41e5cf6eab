package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/edunest/tutord/internal/tutor/service"
	"github.com/edunest/tutord/internal/tutor/store"
	"github.com/edunest/tutord/pkg/httpx"
	"github.com/edunest/tutord/pkg/slogx"

	_ "github.com/edunest/tutord/api/tutor" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	UserService     *service.UserService
	SessionService  *service.SessionService
	ChatService     *service.ChatService
	HistoryService  *service.HistoryService
	SubjectsService *service.SubjectsService

	// StaticDir, when set, is served at / for the bundled frontend.
	StaticDir string

	// HistoryLimit caps /api/history responses; non-positive uses the service
	// default.
	HistoryLimit int
}

func NewRouter(
	buildVersion, corsOrigins string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerChat()
	r.registerSystem()
	r.registerStatic()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Tutor Service API
//	@version		0.1.0
//	@description	AI tutoring backend: account registration, opaque bearer-token
//	@description	sessions, retrieval-augmented chat with per-user history, and
//	@description	subject discovery.
//
//	@contact.name	EduNest Team
//	@contact.url	https://github.com/edunest/tutord
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
//	@description				Opaque session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /api/register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{UserService: r.UserService}
	r.Mux.Handle("POST /api/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{
		UserService:    r.UserService,
		SessionService: r.SessionService,
	}
	r.Mux.Handle("POST /api/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/logout - moderate rate limit by IP. No authn middleware: the
	// handler accepts any token so logout stays idempotent.
	logoutHandler := &LogoutHandler{SessionService: r.SessionService}
	r.Mux.Handle("POST /api/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerChat() {
	verifier := &identityResolver{Sessions: r.SessionService}

	// POST /api/chat - moderate rate limit by user (each call hits the answer engine)
	chatHandler := &ChatHandler{ChatService: r.ChatService}
	r.Mux.Handle("POST /api/chat",
		httpx.Chain(chatHandler,
			httpx.AuthnMiddleware(verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /api/history - lenient rate limit by user (cheap read)
	historyHandler := &HistoryHandler{
		HistoryService: r.HistoryService,
		Limit:          r.HistoryLimit,
	}
	r.Mux.Handle("GET /api/history",
		httpx.Chain(historyHandler,
			httpx.AuthnMiddleware(verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// GET /api/subjects - lenient rate limit by user
	subjectsHandler := &SubjectsHandler{SubjectsService: r.SubjectsService}
	r.Mux.Handle("GET /api/subjects",
		httpx.Chain(subjectsHandler,
			httpx.AuthnMiddleware(verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /api/health",
		httpx.Chain(HealthHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerStatic() {
	if r.StaticDir == "" {
		return
	}
	r.Mux.Handle("GET /", http.FileServer(http.Dir(r.StaticDir)))
}
