package service

import (
	"github.com/esek/ekorre-sub000/internal/domain"
	"github.com/esek/ekorre-sub000/internal/errors"
)

type ProposalService interface {
	Propose(id domain.ElectionId, username domain.Username, postname domain.Postname) error
	Remove(id domain.ElectionId, username domain.Username, postname domain.Postname) error
	GetAll(id domain.ElectionId) ([]domain.Proposal, error)
	Count(id domain.ElectionId, postname *domain.Postname) (int, error)
}

type Proposal struct {
	storage ProposalStorage
}

type ProposalStorage interface {
	CreateProposal(id domain.ElectionId, username domain.Username, postname domain.Postname) error
	DeleteProposal(id domain.ElectionId, username domain.Username, postname domain.Postname) error
	GetProposals(id domain.ElectionId) ([]domain.Proposal, error)
	CountProposals(id domain.ElectionId, postname *domain.Postname) (int, error)
}

func NewProposal(storage ProposalStorage) ProposalService {
	return &Proposal{storage}
}

func (p *Proposal) Propose(id domain.ElectionId, username domain.Username, postname domain.Postname) error {
	if username == "" || postname == "" {
		return errors.Validation("username and postname must not be empty")
	}
	return p.storage.CreateProposal(id, username, postname)
}

func (p *Proposal) Remove(id domain.ElectionId, username domain.Username, postname domain.Postname) error {
	if username == "" || postname == "" {
		return errors.Validation("username and postname must not be empty")
	}
	return p.storage.DeleteProposal(id, username, postname)
}

func (p *Proposal) GetAll(id domain.ElectionId) ([]domain.Proposal, error) {
	return p.storage.GetProposals(id)
}

func (p *Proposal) Count(id domain.ElectionId, postname *domain.Postname) (int, error) {
	return p.storage.CountProposals(id, postname)
}
