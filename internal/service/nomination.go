package service

import (
	"github.com/esek/ekorre-sub000/internal/domain"
	"github.com/esek/ekorre-sub000/internal/errors"
)

type NominationService interface {
	Nominate(username domain.Username, postnames []domain.Postname) error
	Respond(username domain.Username, postname domain.Postname, answer domain.Answer) error
	GetAll(id domain.ElectionId, answer *domain.Answer) ([]domain.Nomination, error)
	GetAllForUser(id domain.ElectionId, username domain.Username, answer *domain.Answer) ([]domain.Nomination, error)
	Count(id domain.ElectionId, postname *domain.Postname) (int, error)
}

type Nomination struct {
	storage  NominationStorage
	resolver OpenElectionResolver
}

type NominationStorage interface {
	CreateNominations(id domain.ElectionId, username domain.Username, postnames []domain.Postname) error
	UpdateNominationAnswer(id domain.ElectionId, username domain.Username, postname domain.Postname, answer domain.Answer) error
	GetNominations(id domain.ElectionId, filter domain.NominationFilter) ([]domain.Nomination, error)
	CountNominations(id domain.ElectionId, postname *domain.Postname) (int, error)
}

// OpenElectionResolver locates the election currently accepting nominations.
type OpenElectionResolver interface {
	GetOpenElection() (domain.Election, error)
}

func NewNomination(storage NominationStorage, resolver OpenElectionResolver) NominationService {
	return &Nomination{storage, resolver}
}

// resolveOpen translates the absence of an open election into the
// caller-facing precondition failure.
func (n *Nomination) resolveOpen() (domain.Election, error) {
	election, err := n.resolver.GetOpenElection()
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.Election{}, errors.Conflict("no open election")
		}
		return domain.Election{}, err
	}
	return election, nil
}

func (n *Nomination) Nominate(username domain.Username, postnames []domain.Postname) error {
	if username == "" {
		return errors.Validation("username must not be empty")
	}
	if len(postnames) == 0 {
		return errors.Validation("postnames must not be empty")
	}

	election, err := n.resolveOpen()
	if err != nil {
		return err
	}
	return n.storage.CreateNominations(election.Id, username, postnames)
}

func (n *Nomination) Respond(username domain.Username, postname domain.Postname, answer domain.Answer) error {
	if username == "" || postname == "" {
		return errors.Validation("username and postname must not be empty")
	}
	if !answer.Valid() {
		return errors.Validation("answer must be YES, NO or NO_ANSWER")
	}

	election, err := n.resolveOpen()
	if err != nil {
		return err
	}
	return n.storage.UpdateNominationAnswer(election.Id, username, postname, answer)
}

func (n *Nomination) GetAll(id domain.ElectionId, answer *domain.Answer) ([]domain.Nomination, error) {
	return n.storage.GetNominations(id, domain.NominationFilter{Answer: answer})
}

func (n *Nomination) GetAllForUser(id domain.ElectionId, username domain.Username, answer *domain.Answer) ([]domain.Nomination, error) {
	if username == "" {
		return nil, errors.Validation("username must not be empty")
	}
	return n.storage.GetNominations(id, domain.NominationFilter{Username: &username, Answer: answer})
}

func (n *Nomination) Count(id domain.ElectionId, postname *domain.Postname) (int, error) {
	return n.storage.CountNominations(id, postname)
}
