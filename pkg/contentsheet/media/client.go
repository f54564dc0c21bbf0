// Package media fetches the attachment catalog from the platform's export endpoint.
package media

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
)

// DefaultURL is the platform's content export endpoint.
const DefaultURL = "https://whatsapp.turn.io/v1/export"

// acceptHeader selects the versioned export API.
const acceptHeader = "application/vnd.v1+json"

// ErrMissingToken indicates no API token was configured.
var ErrMissingToken = errors.New("missing media export token")

// StatusError is returned when the export endpoint answers with a non-success status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("media export %s: unexpected status %s", e.URL, e.Status)
}

// Client fetches the media catalog.
type Client struct {
	URL        string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a Client with the given request timeout.
func NewClient(url, token string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		URL:        url,
		Token:      token,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type exportResponse struct {
	Data []models.MediaEntry `json:"data"`
}

// Fetch downloads the catalog. Entries without a media object are dropped, and entries
// are keyed by question id without its language prefix.
func (c *Client) Fetch(ctx context.Context) (models.MediaCatalog, error) {
	if c.Token == "" {
		return nil, ErrMissingToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", acceptHeader)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media export request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: c.URL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var payload exportResponse
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding media export: %w", err)
	}

	catalog := make(models.MediaCatalog)
	for _, entry := range payload.Data {
		if !hasMedia(entry.AttachmentMediaObject) {
			continue
		}
		catalog[models.StripLanguage(entry.Question)] = entry
	}
	return catalog, nil
}

// hasMedia reports whether a decoded media object is set; null, false, zero and empty values are not.
func hasMedia(v any) bool {
	switch m := v.(type) {
	case nil:
		return false
	case bool:
		return m
	case float64:
		return m != 0
	case string:
		return m != ""
	case map[string]any:
		return len(m) > 0
	case []any:
		return len(m) > 0
	default:
		return true
	}
}
