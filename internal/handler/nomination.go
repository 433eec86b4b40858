package handler

import (
	"net/http"

	"github.com/esek/ekorre-sub000/internal/api"
	"github.com/esek/ekorre-sub000/internal/domain"
	"github.com/esek/ekorre-sub000/internal/utils"
)

func (h *Handler) Nominate(w http.ResponseWriter, r *http.Request) {
	var body api.NominateRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.nomination.Nominate(body.Username, body.Postnames); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) RespondToNomination(w http.ResponseWriter, r *http.Request) {
	var body api.RespondToNominationRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.nomination.Respond(body.Username, body.Postname, domain.Answer(body.Answer)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetNominations(w http.ResponseWriter, r *http.Request) {
	id, err := electionIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	answer, err := answerQuery(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var nominations []domain.Nomination
	if username := r.URL.Query().Get("username"); username != "" {
		nominations, err = h.nomination.GetAllForUser(id, username, answer)
	} else {
		nominations, err = h.nomination.GetAll(id, answer)
	}
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NominationListResponse{Nominations: nominations})
}

func (h *Handler) GetNominationCount(w http.ResponseWriter, r *http.Request) {
	id, err := electionIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	count, err := h.nomination.Count(id, postnameQuery(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.CountResponse{Count: count})
}
