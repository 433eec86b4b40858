package service

import (
	"github.com/esek/ekorre-sub000/internal/domain"
	"github.com/esek/ekorre-sub000/internal/errors"
)

// to mock service in tests
type ElectionService interface {
	Create(data domain.ElectionCreationData) (domain.ElectionId, error)
	Open(id domain.ElectionId) error
	Close() error
	Get(id domain.ElectionId) (domain.Election, error)
	GetOpen() (domain.Election, error)
	GetLatest() (domain.Election, error)
}

type Election struct {
	storage ElectionStorage
}

type ElectionStorage interface {
	CreateElection(data domain.ElectionCreationData) (domain.ElectionId, error)
	OpenElection(id domain.ElectionId) error
	CloseElection() error
	GetElection(id domain.ElectionId) (domain.Election, error)
	GetOpenElection() (domain.Election, error)
	GetLatestElection() (domain.Election, error)
}

func NewElection(storage ElectionStorage) ElectionService {
	return &Election{storage}
}

func (e *Election) Create(data domain.ElectionCreationData) (domain.ElectionId, error) {
	if data.Creator == "" {
		return domain.ElectionId{}, errors.Validation("creator must not be empty")
	}
	return e.storage.CreateElection(data)
}

func (e *Election) Open(id domain.ElectionId) error {
	return e.storage.OpenElection(id)
}

func (e *Election) Close() error {
	return e.storage.CloseElection()
}

func (e *Election) Get(id domain.ElectionId) (domain.Election, error) {
	return e.storage.GetElection(id)
}

func (e *Election) GetOpen() (domain.Election, error) {
	return e.storage.GetOpenElection()
}

func (e *Election) GetLatest() (domain.Election, error) {
	return e.storage.GetLatestElection()
}
