// Package httpapi assembles the chi router: middleware chain first, then
// the public health probe, then the authenticated /v1 surface.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/http/handlers"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/infra"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(cfg.CORSOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.AuthJWT(cfg.JWTSecret))

		r.Get("/me", app.Me)

		r.Route("/discovery", func(r chi.Router) {
			r.Get("/trade/{trade}", app.DiscoverByTrade)
			r.Get("/trades-near-you", app.TradesNearYou)
		})

		r.Route("/tenders", func(r chi.Router) {
			r.Post("/", app.TenderCreate)
			r.Post("/{id}/quotes", app.QuoteSubmit)
		})

		r.Post("/availability", app.AvailabilityCreate)
		r.Post("/suggest", app.Suggest)
	})

	return r
}
