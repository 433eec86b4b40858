package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/esek/ekorre-sub000/internal/api"
	"github.com/esek/ekorre-sub000/internal/domain"
	"github.com/esek/ekorre-sub000/internal/errors"
)

// MockElectionService mocks the service.ElectionService interface.
type MockElectionService struct {
	MockCreate    func(data domain.ElectionCreationData) (domain.ElectionId, error)
	MockOpen      func(id domain.ElectionId) error
	MockClose     func() error
	MockGet       func(id domain.ElectionId) (domain.Election, error)
	MockGetOpen   func() (domain.Election, error)
	MockGetLatest func() (domain.Election, error)
}

func (m *MockElectionService) Create(data domain.ElectionCreationData) (domain.ElectionId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return uuid.New(), nil
}

func (m *MockElectionService) Open(id domain.ElectionId) error {
	if m.MockOpen != nil {
		return m.MockOpen(id)
	}
	return nil
}

func (m *MockElectionService) Close() error {
	if m.MockClose != nil {
		return m.MockClose()
	}
	return nil
}

func (m *MockElectionService) Get(id domain.ElectionId) (domain.Election, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.Election{}, nil
}

func (m *MockElectionService) GetOpen() (domain.Election, error) {
	if m.MockGetOpen != nil {
		return m.MockGetOpen()
	}
	return domain.Election{}, nil
}

func (m *MockElectionService) GetLatest() (domain.Election, error) {
	if m.MockGetLatest != nil {
		return m.MockGetLatest()
	}
	return domain.Election{}, nil
}

func newElectionRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/v1/elections", h.CreateElection)
	r.Post("/v1/elections/close", h.CloseElection)
	r.Post("/v1/elections/{election}/open", h.OpenElection)
	r.Get("/v1/elections/open", h.GetOpenElection)
	r.Get("/v1/elections/{election}", h.GetElection)
	return r
}

func TestCreateElectionHandler(t *testing.T) {
	h := &Handler{}
	router := newElectionRouter(h)
	requestBody := []byte(`{"creator": "u1", "electable_postnames": ["PostA", "PostB"]}`)

	t.Run("successful request", func(t *testing.T) {
		id := uuid.New()
		h.election = &MockElectionService{
			MockCreate: func(data domain.ElectionCreationData) (domain.ElectionId, error) {
				assert.Equal(t, "u1", data.Creator)
				assert.Equal(t, []string{"PostA", "PostB"}, data.ElectablePostnames)
				return id, nil
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/elections", bytes.NewBuffer(requestBody))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp api.CreateElectionResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, id.String(), resp.Id)
	})

	t.Run("invalid request body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/elections", bytes.NewBuffer([]byte(`{invalid json::}`)))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing creator", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/elections", bytes.NewBuffer([]byte(`{"electable_postnames": ["PostA"]}`)))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("pending election conflict", func(t *testing.T) {
		h.election = &MockElectionService{
			MockCreate: func(data domain.ElectionCreationData) (domain.ElectionId, error) {
				return uuid.Nil, errors.Conflict("an election is open or pending closure")
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/elections", bytes.NewBuffer(requestBody))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestOpenElectionHandler(t *testing.T) {
	h := &Handler{}
	router := newElectionRouter(h)
	id := uuid.New()

	t.Run("successful", func(t *testing.T) {
		h.election = &MockElectionService{
			MockOpen: func(got domain.ElectionId) error {
				assert.Equal(t, id, got)
				return nil
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/elections/"+id.String()+"/open", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/elections/not-a-uuid/open", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("already closed", func(t *testing.T) {
		h.election = &MockElectionService{
			MockOpen: func(got domain.ElectionId) error {
				return errors.Conflict("election is already open, already closed or does not exist")
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/elections/"+id.String()+"/open", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestCloseElectionHandler(t *testing.T) {
	h := &Handler{}
	router := newElectionRouter(h)

	t.Run("successful", func(t *testing.T) {
		h.election = &MockElectionService{}
		req := httptest.NewRequest(http.MethodPost, "/v1/elections/close", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("no open election", func(t *testing.T) {
		h.election = &MockElectionService{
			MockClose: func() error { return errors.Conflict("no open election") },
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/elections/close", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestGetOpenElectionHandler(t *testing.T) {
	h := &Handler{}
	router := newElectionRouter(h)

	t.Run("successful", func(t *testing.T) {
		id := uuid.New()
		h.election = &MockElectionService{
			MockGetOpen: func() (domain.Election, error) {
				return domain.Election{Id: id, Creator: "u1", Open: true}, nil
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/v1/elections/open", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp api.ElectionResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, id, resp.Id)
		assert.True(t, resp.Open)
	})

	t.Run("none open", func(t *testing.T) {
		h.election = &MockElectionService{
			MockGetOpen: func() (domain.Election, error) {
				return domain.Election{}, errors.NotFound("no open election")
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/v1/elections/open", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
