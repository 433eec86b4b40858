package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/esek/ekorre-sub000/internal/service"
)

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	election   service.ElectionService
	electable  service.ElectableService
	nomination service.NominationService
	proposal   service.ProposalService
	health     Pinger
}

func New(election service.ElectionService, electable service.ElectableService, nomination service.NominationService, proposal service.ProposalService, health Pinger) *Handler {
	return &Handler{election, electable, nomination, proposal, health}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "err", err)
	}
}
