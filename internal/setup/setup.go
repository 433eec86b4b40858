package setup

import (
	"time"

	"github.com/esek/ekorre-sub000/internal/config"
	"github.com/esek/ekorre-sub000/internal/handler"
	"github.com/esek/ekorre-sub000/internal/middleware/ratelimiter"
	"github.com/esek/ekorre-sub000/internal/service"
	"github.com/esek/ekorre-sub000/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage     *pg.Storage
	Handler     *handler.Handler
	Config      *config.Config
	RateLimiter *ratelimiter.UserRateLimiter
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	election := service.NewElection(storage)
	electable := service.NewElectable(storage)
	nomination := service.NewNomination(storage, storage)
	proposal := service.NewProposal(storage)

	h := handler.New(election, electable, nomination, proposal, storage)

	rl := ratelimiter.New(cfg.Public.MutationRps, cfg.Public.MutationBurst, 1*time.Hour)

	return &Dependencies{
		Storage:     storage,
		Handler:     h,
		Config:      cfg,
		RateLimiter: rl,
	}, nil
}
