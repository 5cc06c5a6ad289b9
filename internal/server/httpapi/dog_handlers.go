package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avolkov/dogshelter/internal/common"
)

func (s *Server) handleListDogs(w http.ResponseWriter, r *http.Request) {
	dogs, err := s.dogs.List(r.Context())
	if err != nil {
		s.respondError(w, r, err, "", "")
		return
	}
	s.respondJSON(w, http.StatusOK, toDogResponses(dogs))
}

func (s *Server) handleListAdoptedDogs(w http.ResponseWriter, r *http.Request) {
	dogs, err := s.dogs.ListAdopted(r.Context())
	if err != nil {
		s.respondError(w, r, err, "", "")
		return
	}
	s.respondJSON(w, http.StatusOK, toDogResponses(dogs))
}

func (s *Server) handleGetDog(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	dog, err := s.dogs.GetByName(r.Context(), name)
	if err != nil {
		s.respondError(w, r, err, "Dog not found", "")
		return
	}
	s.respondJSON(w, http.StatusOK, toDogResponse(dog))
}

// handleGetStatus reports the latest adoption stage the worker has recorded
// for the dog. Absence means no stage task has fired yet.
func (s *Server) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	stage, err := s.status.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.respondDetail(w, http.StatusNotFound, "No status for this dog yet")
			return
		}
		s.respondError(w, r, err, "", "")
		return
	}

	s.respondJSON(w, http.StatusOK, statusResponse{Name: name, Stage: stage})
}

func (s *Server) handleCreateDog(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var payload dogPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dog, err := s.dogs.Create(r.Context(), name, payload.IsAdopted, userFrom(r))
	if err != nil {
		s.respondError(w, r, err, "", "Dog already exists")
		return
	}

	s.respondJSON(w, http.StatusOK, toDogResponse(dog))
}

func (s *Server) handleUpdateDog(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var payload dogPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dog, err := s.dogs.UpdateAdoption(r.Context(), name, payload.IsAdopted)
	if err != nil {
		s.respondError(w, r, err, "Dog not found", "")
		return
	}

	s.respondJSON(w, http.StatusOK, toDogResponse(dog))
}

func (s *Server) handleDeleteDog(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := s.dogs.Delete(r.Context(), name); err != nil {
		s.respondError(w, r, err, "Dog does not exist", "")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"name": name, "detail": "Dog deleted"})
}
