package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkov/dogshelter/internal/common"
)

// detailResponse matches the {"detail": "..."} error body the API has always
// produced.
type detailResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) respondJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) respondDetail(w http.ResponseWriter, code int, detail string) {
	s.respondJSON(w, code, detailResponse{Detail: detail})
}

func (s *Server) respondUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	s.respondDetail(w, http.StatusUnauthorized, detail)
}

// respondError maps sentinel errors to the API's status conventions.
// Conflicts deliberately surface as 403, not 409, for compatibility with
// existing clients.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, notFoundDetail, conflictDetail string) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		s.respondDetail(w, http.StatusNotFound, notFoundDetail)
	case errors.Is(err, common.ErrorAlreadyExists):
		s.respondDetail(w, http.StatusForbidden, conflictDetail)
	case errors.Is(err, common.ErrorUnauthorized):
		s.respondUnauthorized(w, "Could not validate credentials")
	case errors.Is(err, common.ErrorInactiveUser):
		s.respondDetail(w, http.StatusForbidden, "Inactive user")
	case errors.Is(err, common.ErrorUpstream):
		s.respondDetail(w, http.StatusBadGateway, "Upstream service error")
	case errors.Is(err, common.ErrorTaskDelivery):
		s.respondDetail(w, http.StatusBadGateway, "Could not schedule stage tasks")
	default:
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
		s.respondDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}
