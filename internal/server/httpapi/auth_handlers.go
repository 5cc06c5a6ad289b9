package httpapi

import (
	"errors"
	"net/http"

	"github.com/avolkov/dogshelter/internal/common"
)

// handleToken issues a bearer token for valid, active credentials.
// Credentials arrive as form fields, matching the original login form.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseForm(); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		s.respondDetail(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := s.users.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.respondUnauthorized(w, "Incorrect email or password")
			return
		}
		s.respondError(w, r, err, "", "")
		return
	}

	s.respondJSON(w, http.StatusOK, tokenResponse{Scheme: "Bearer", Credentials: token})
}
