package domain

import "github.com/google/uuid"

type (
	Username = string
	Postname = string

	ElectionId = uuid.UUID
)

// Answer is a nominee's reply to being nominated.
type Answer string

const (
	AnswerYes      Answer = "YES"
	AnswerNo       Answer = "NO"
	AnswerNotGiven Answer = "NO_ANSWER"
)

// Valid reports whether a is one of the three known answer values.
func (a Answer) Valid() bool {
	switch a {
	case AnswerYes, AnswerNo, AnswerNotGiven:
		return true
	}
	return false
}
