// Package clients wraps the external collaborators the API server talks to
// over HTTP: the random-image service and the file-upload backends.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avolkov/dogshelter/internal/common"
)

// ImageClient fetches a random dog picture URL from the external image
// service. All failures (timeout, transport, non-2xx, bad body) surface as
// common.ErrorUpstream so callers can map them to a gateway error instead of
// swallowing them.
type ImageClient struct {
	url    string
	client *http.Client
}

func NewImageClient(url string, timeout time.Duration) *ImageClient {
	return &ImageClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// RandomPicture returns the picture URL from the service's
// {"message": "<url>", "status": "..."} response.
func (c *ImageClient) RandomPicture(ctx context.Context) (string, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: image service returned %d", common.ErrorUpstream, resp.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}
	if body.Message == "" {
		return "", fmt.Errorf("%w: image service returned empty message", common.ErrorUpstream)
	}

	return body.Message, nil
}
