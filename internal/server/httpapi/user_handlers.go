package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avolkov/dogshelter/internal/server/repositories/users"
)

func userIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.List(r.Context())
	if err != nil {
		s.respondError(w, r, err, "", "")
		return
	}
	s.respondJSON(w, http.StatusOK, toUserResponses(list))
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		s.respondDetail(w, http.StatusNotFound, "User not found")
		return
	}

	user, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err, "User not found", "")
		return
	}
	s.respondJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {

	var payload signupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		s.respondDetail(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := s.users.SignUp(r.Context(), payload.Email, payload.Password)
	if err != nil {
		s.respondError(w, r, err, "", "User already exists")
		return
	}

	s.respondJSON(w, http.StatusOK, signupResponse{ID: user.ID, Email: user.Email})
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		s.respondDetail(w, http.StatusNotFound, "User not found")
		return
	}

	var payload userPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Omitted disabled keeps the historical default.
	disabled := true
	if payload.Disabled != nil {
		disabled = *payload.Disabled
	}

	user, err := s.users.Update(r.Context(), id, users.UpdateParams{
		Name:     payload.Name,
		LastName: payload.LastName,
		Disabled: disabled,
	})
	if err != nil {
		s.respondError(w, r, err, "User not found", "")
		return
	}

	s.respondJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		s.respondDetail(w, http.StatusNotFound, "User does not exist")
		return
	}

	if err := s.users.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err, "User does not exist", "")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"id": id, "detail": "User deleted"})
}
