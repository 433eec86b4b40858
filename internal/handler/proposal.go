package handler

import (
	"net/http"

	"github.com/esek/ekorre-sub000/internal/api"
	"github.com/esek/ekorre-sub000/internal/utils"
)

func (h *Handler) Propose(w http.ResponseWriter, r *http.Request) {
	id, err := electionIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.ProposalRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.proposal.Propose(id, body.Username, body.Postname); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) RemoveProposal(w http.ResponseWriter, r *http.Request) {
	id, err := electionIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.ProposalRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.proposal.Remove(id, body.Username, body.Postname); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetProposals(w http.ResponseWriter, r *http.Request) {
	id, err := electionIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	proposals, err := h.proposal.GetAll(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ProposalListResponse{Proposals: proposals})
}

func (h *Handler) GetProposalCount(w http.ResponseWriter, r *http.Request) {
	id, err := electionIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	count, err := h.proposal.Count(id, postnameQuery(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.CountResponse{Count: count})
}
