package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/esek/ekorre-sub000/internal/middleware"
	"github.com/esek/ekorre-sub000/internal/middleware/metrics"
	"github.com/esek/ekorre-sub000/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{deps.Config.Public.CorsOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(metrics.Middleware)

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		// Mutating endpoints share a per-IP token bucket.
		v1.Group(func(g chi.Router) {
			g.Use(mw.RateLimit(deps.RateLimiter, mw.GetIP))

			g.Post("/elections", h.CreateElection)
			g.Post("/elections/close", h.CloseElection)
			g.Post("/elections/{election}/open", h.OpenElection)

			g.Post("/elections/{election}/electables", h.AddElectables)
			g.Delete("/elections/{election}/electables", h.RemoveElectables)
			g.Put("/elections/{election}/electables", h.SetElectables)

			g.Post("/nominations", h.Nominate)
			g.Put("/nominations/answer", h.RespondToNomination)

			g.Post("/elections/{election}/proposals", h.Propose)
			g.Delete("/elections/{election}/proposals", h.RemoveProposal)
		})

		v1.Get("/elections/open", h.GetOpenElection)
		v1.Get("/elections/latest", h.GetLatestElection)
		v1.Get("/elections/{election}", h.GetElection)
		v1.Get("/elections/{election}/electables", h.GetElectables)
		v1.Get("/elections/{election}/nominations", h.GetNominations)
		v1.Get("/elections/{election}/nominations/count", h.GetNominationCount)
		v1.Get("/elections/{election}/proposals", h.GetProposals)
		v1.Get("/elections/{election}/proposals/count", h.GetProposalCount)
	})

	return r
}
