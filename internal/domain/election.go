package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type ElectionCreationData struct {
	Creator            Username
	ElectablePostnames []Postname
	NominationsHidden  bool
}

type Election struct {
	Id                ElectionId `json:"id"`
	Creator           Username   `json:"creator"`
	CreatedAt         time.Time  `json:"created_at"`
	NominationsHidden bool       `json:"nominations_hidden"`
	Open              bool       `json:"open"`
	OpenedAt          *time.Time `json:"opened_at,omitempty"`
	ClosedAt          *time.Time `json:"closed_at,omitempty"`
}

type Electable struct {
	ElectionId ElectionId `json:"election_id"`
	Postname   Postname   `json:"postname"`
}

type Nomination struct {
	ElectionId ElectionId `json:"election_id"`
	Username   Username   `json:"username"`
	Postname   Postname   `json:"postname"`
	Answer     Answer     `json:"answer"`
}

type Proposal struct {
	ElectionId ElectionId `json:"election_id"`
	Username   Username   `json:"username"`
	Postname   Postname   `json:"postname"`
}

// NominationFilter narrows nomination listings. Nil fields are ignored.
type NominationFilter struct {
	Username *Username
	Answer   *Answer
}
