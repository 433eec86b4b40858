package handler

import (
	"net/http"

	"github.com/esek/ekorre-sub000/internal/api"
	"github.com/esek/ekorre-sub000/internal/domain"
	"github.com/esek/ekorre-sub000/internal/utils"
)

func (h *Handler) CreateElection(w http.ResponseWriter, r *http.Request) {
	var body api.CreateElectionRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.election.Create(domain.ElectionCreationData{
		Creator:            body.Creator,
		ElectablePostnames: body.ElectablePostnames,
		NominationsHidden:  body.NominationsHidden,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.CreateElectionResponse{Id: id.String()})
}

func (h *Handler) OpenElection(w http.ResponseWriter, r *http.Request) {
	id, err := electionIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.election.Open(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) CloseElection(w http.ResponseWriter, r *http.Request) {
	if err := h.election.Close(); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetOpenElection(w http.ResponseWriter, r *http.Request) {
	election, err := h.election.GetOpen()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ElectionResponse{Election: election})
}

func (h *Handler) GetLatestElection(w http.ResponseWriter, r *http.Request) {
	election, err := h.election.GetLatest()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ElectionResponse{Election: election})
}

func (h *Handler) GetElection(w http.ResponseWriter, r *http.Request) {
	id, err := electionIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	election, err := h.election.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ElectionResponse{Election: election})
}
