package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"parcel-server/internal/http/handlers"
	mw "parcel-server/internal/http/middleware"
	"parcel-server/internal/http/middleware/ratelimit"
	"parcel-server/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	logger logx.Logger,
	base *handlers.Handlers,
	users *handlers.UserHandler,
	parcels *handlers.ParcelHandler,
	payments *handlers.PaymentHandler,
	tracking *handlers.TrackingHandler,
	limiter *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.Observability(logger))
	r.Use(chimw.Recoverer)
	if limiter != nil {
		r.Use(limiter.Handler())
	}
	r.Use(chimw.Timeout(10 * time.Second))

	r.Get("/", base.Root)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/users", users.Register)

	r.Route("/parcels", func(r chi.Router) {
		r.Get("/", parcels.List)
		r.Post("/", parcels.Create)
		r.Get("/{id}", parcels.GetByID)
		r.Delete("/{id}", parcels.Delete)
	})

	r.Post("/tracking", tracking.Append)

	r.Get("/payments", payments.History)
	r.Post("/payments", payments.Record)
	r.Post("/create-payment-intent", payments.CreateIntent)

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
