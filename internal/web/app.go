package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"SkiShop/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

const (
	loginLimitPerMin    = 5
	registerLimitPerMin = 3
	limitWindow         = time.Minute

	readyTimeout = 1 * time.Second
)

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, s, deps)
	setupMetrics(r, deps)
	setupRoutes(r, s)

	return r
}

func setupMiddleware(r *chi.Mux, s *Server, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(chimw.StripSlashes)
	r.Use(chimw.Recoverer)
	r.Use(kit.Logging(deps.Log))
	r.Use(s.Sessions.Middleware)
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func setupRoutes(r *chi.Mux, s *Server) {
	loginLimiter := kit.NewIPRateLimiter(loginLimitPerMin, limitWindow)
	registerLimiter := kit.NewIPRateLimiter(registerLimitPerMin, limitWindow)

	r.Get("/", s.home)
	r.Get("/catalog/{category}", s.catalogList)
	r.Get("/sales", s.salesRedirect)
	r.Get("/arrivals", s.arrivalsRedirect)
	r.Get("/product/{id}", s.productDetail)

	// Cart mutations accept any method: the pages link to them with both
	// forms and plain anchors.
	r.Handle("/add-to-cart/{id}", http.HandlerFunc(s.addToCart))
	r.Handle("/remove-from-cart/{id}", http.HandlerFunc(s.removeFromCart))
	r.Get("/cart", s.cartView)

	r.Get("/checkout", s.checkoutForm)
	r.Post("/checkout", s.checkoutSubmit)

	r.Get("/login", s.loginForm)
	r.With(loginLimiter.Middleware).Post("/login", s.login)
	r.Get("/register", s.registerForm)
	r.With(registerLimiter.Middleware).Post("/register", s.register)
	r.Handle("/logout", http.HandlerFunc(s.logout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.ready)
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	for name, ping := range map[string]func(context.Context) error{
		"users": s.Users.Ping,
		"cart":  s.Cart.Ping,
	} {
		if err := ping(ctx); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.String("store", name), zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}
