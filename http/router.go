package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"fincalc/config"
	"fincalc/format"
)

// RouterConfig carries everything the router wires together.
type RouterConfig struct {
	Log                   zerolog.Logger
	Limits                *config.Limits
	RateLimiter           *RateLimiter
	CapitalGainsHandler   *CapitalGainsHandler
	LoanHandler           *LoanHandler
	WithdrawalPlanHandler *WithdrawalPlanHandler
}

func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(cfg.Log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, cfg.Log, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/limits", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, cfg.Log, LimitsResponse{Currency: format.CurrencySymbol, Note: format.Footnote, Limits: cfg.Limits})
		})

		r.Group(func(r chi.Router) {
			if cfg.RateLimiter != nil {
				r.Use(RateLimitMiddleware(cfg.RateLimiter, cfg.Log))
			}
			r.Post("/capital-gains", cfg.CapitalGainsHandler.CalculateCapitalGains)
			r.Post("/loan", cfg.LoanHandler.CalculateLoan)
			r.Post("/swp", cfg.WithdrawalPlanHandler.CalculateWithdrawalPlan)
		})
	})

	return r
}

// LimitsResponse is served at GET /api/limits.
type LimitsResponse struct {
	Currency string         `json:"currency"`
	Note     string         `json:"note"`
	Limits   *config.Limits `json:"limits"`
}

func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("HTTP request")
		})
	}
}
