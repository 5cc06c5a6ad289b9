package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/avolkov/dogshelter/internal/common"
)

// Uploader stores an uploaded file with an external backend and returns the
// backend's JSON response, relayed verbatim to the API client.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (json.RawMessage, error)
}

// HTTPUploader proxies uploads to the external file service as a multipart
// POST, the way the service expects them from browsers.
type HTTPUploader struct {
	url    string
	client *http.Client
}

func NewHTTPUploader(url string, timeout time.Duration) *HTTPUploader {
	return &HTTPUploader{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (u *HTTPUploader) Upload(ctx context.Context, filename, contentType string, r io.Reader) (json.RawMessage, error) {

	// Stream the multipart body instead of buffering the whole file.
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.url, pr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: upload service returned %d", common.ErrorUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: upload service returned non-JSON body", common.ErrorUpstream)
	}

	return json.RawMessage(body), nil
}
