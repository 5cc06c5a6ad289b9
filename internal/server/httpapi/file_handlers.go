package httpapi

import (
	"net/http"
)

// maxUploadMemory bounds the in-memory part of multipart parsing; larger
// files spill to temp storage.
const maxUploadMemory = 32 << 20

// handleUploadFile relays a multipart upload to the configured backend and
// returns the backend's JSON response verbatim.
func (s *Server) handleUploadFile(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondDetail(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	body, err := s.uploader.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		s.respondError(w, r, err, "", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
