package api

import "github.com/esek/ekorre-sub000/internal/domain"

// Request DTOs

type CreateElectionRequest struct {
	Creator            string   `json:"creator" validate:"required"`
	ElectablePostnames []string `json:"electable_postnames,omitempty"`
	NominationsHidden  bool     `json:"nominations_hidden,omitempty"`
}

type ElectablesRequest struct {
	Postnames []string `json:"postnames"`
}

type NominateRequest struct {
	Username  string   `json:"username" validate:"required"`
	Postnames []string `json:"postnames"`
}

type RespondToNominationRequest struct {
	Username string `json:"username" validate:"required"`
	Postname string `json:"postname" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type ProposalRequest struct {
	Username string `json:"username" validate:"required"`
	Postname string `json:"postname" validate:"required"`
}

// Response DTOs

type CreateElectionResponse struct {
	Id string `json:"id"`
}

type ElectionResponse struct {
	domain.Election
}

type ElectablesResponse struct {
	Postnames []string `json:"postnames"`
}

type NominationListResponse struct {
	Nominations []domain.Nomination `json:"nominations"`
}

type ProposalListResponse struct {
	Proposals []domain.Proposal `json:"proposals"`
}

type CountResponse struct {
	Count int `json:"count"`
}
