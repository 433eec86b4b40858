package handler

import (
	"net/http"

	"github.com/esek/ekorre-sub000/internal/api"
	"github.com/esek/ekorre-sub000/internal/domain"
	"github.com/esek/ekorre-sub000/internal/utils"
)

func (h *Handler) AddElectables(w http.ResponseWriter, r *http.Request) {
	h.mutateElectables(w, r, h.electable.Add, http.StatusCreated)
}

func (h *Handler) RemoveElectables(w http.ResponseWriter, r *http.Request) {
	h.mutateElectables(w, r, h.electable.Remove, http.StatusOK)
}

func (h *Handler) SetElectables(w http.ResponseWriter, r *http.Request) {
	h.mutateElectables(w, r, h.electable.Set, http.StatusOK)
}

func (h *Handler) mutateElectables(w http.ResponseWriter, r *http.Request, op func(domain.ElectionId, []domain.Postname) error, successCode int) {
	id, err := electionIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.ElectablesRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := op(id, body.Postnames); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(successCode)
}

func (h *Handler) GetElectables(w http.ResponseWriter, r *http.Request) {
	id, err := electionIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	postnames, err := h.electable.GetAll(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if postnames == nil {
		postnames = []domain.Postname{}
	}

	writeJSON(w, api.ElectablesResponse{Postnames: postnames})
}
