package service

import (
	"github.com/esek/ekorre-sub000/internal/domain"
	"github.com/esek/ekorre-sub000/internal/errors"
)

type ElectableService interface {
	Add(id domain.ElectionId, postnames []domain.Postname) error
	Remove(id domain.ElectionId, postnames []domain.Postname) error
	Set(id domain.ElectionId, postnames []domain.Postname) error
	GetAll(id domain.ElectionId) ([]domain.Postname, error)
}

type Electable struct {
	storage ElectableStorage
}

type ElectableStorage interface {
	AddElectables(id domain.ElectionId, postnames []domain.Postname) error
	RemoveElectables(id domain.ElectionId, postnames []domain.Postname) error
	SetElectables(id domain.ElectionId, postnames []domain.Postname) error
	GetElectables(id domain.ElectionId) ([]domain.Postname, error)
}

func NewElectable(storage ElectableStorage) ElectableService {
	return &Electable{storage}
}

func (e *Electable) Add(id domain.ElectionId, postnames []domain.Postname) error {
	if len(postnames) == 0 {
		return errors.Validation("postnames must not be empty")
	}
	return e.storage.AddElectables(id, postnames)
}

func (e *Electable) Remove(id domain.ElectionId, postnames []domain.Postname) error {
	if len(postnames) == 0 {
		return errors.Validation("postnames must not be empty")
	}
	return e.storage.RemoveElectables(id, postnames)
}

// Set replaces the electable set; an empty list is valid and clears it.
func (e *Electable) Set(id domain.ElectionId, postnames []domain.Postname) error {
	return e.storage.SetElectables(id, postnames)
}

func (e *Electable) GetAll(id domain.ElectionId) ([]domain.Postname, error) {
	return e.storage.GetElectables(id)
}
