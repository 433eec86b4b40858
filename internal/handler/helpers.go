package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/esek/ekorre-sub000/internal/domain"
	"github.com/esek/ekorre-sub000/internal/errors"
)

// electionIdParam parses the {election} URL parameter.
func electionIdParam(r *http.Request) (domain.ElectionId, error) {
	id, err := uuid.Parse(chi.URLParam(r, "election"))
	if err != nil {
		return uuid.Nil, errors.Validation("invalid election id")
	}
	return id, nil
}

// answerQuery parses the optional ?answer= filter.
func answerQuery(r *http.Request) (*domain.Answer, error) {
	raw := r.URL.Query().Get("answer")
	if raw == "" {
		return nil, nil
	}
	answer := domain.Answer(raw)
	if !answer.Valid() {
		return nil, errors.Validation("answer must be YES, NO or NO_ANSWER")
	}
	return &answer, nil
}

// postnameQuery parses the optional ?postname= filter.
func postnameQuery(r *http.Request) *domain.Postname {
	raw := r.URL.Query().Get("postname")
	if raw == "" {
		return nil
	}
	postname := domain.Postname(raw)
	return &postname
}
