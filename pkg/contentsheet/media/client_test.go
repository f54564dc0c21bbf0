package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportBody = `{
  "data": [
    {"question": "eng_welcome", "attachment_media_object": {"id": "1"}, "attachment_media_type": "image",
     "attachment_mime_type": "image/png", "attachment_uri": "https://example.com/1.png"},
    {"question": "zul_menu", "attachment_media_object": null},
    {"question": "eng_about", "attachment_media_object": false},
    {"question": "eng_faq", "attachment_media_object": {}},
    {"question": "tips", "attachment_media_object": "doc-7", "attachment_media_type": "document"}
  ]
}`

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.v1+json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(exportBody))
	}))
	defer server.Close()

	catalog, err := NewClient(server.URL, "secret", 5*time.Second).Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, catalog, 2)
	welcome, ok := catalog["welcome"]
	require.True(t, ok)
	assert.Equal(t, "eng_welcome", welcome.Question)
	assert.Equal(t, map[string]any{"id": "1"}, welcome.AttachmentMediaObject)
	require.NotNil(t, welcome.AttachmentURI)
	assert.Equal(t, "https://example.com/1.png", *welcome.AttachmentURI)

	tips, ok := catalog["tips"]
	require.True(t, ok)
	assert.Equal(t, "doc-7", tips.AttachmentMediaObject)
	assert.Nil(t, tips.AttachmentMimeType)
}

func TestFetchMissingToken(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "", time.Second).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrMissingToken)
	assert.False(t, called)
}

func TestFetchStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "secret", time.Second).Fetch(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "403")
}

func TestFetchInvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "secret", time.Second).Fetch(context.Background())
	assert.ErrorContains(t, err, "decoding media export")
}

func TestFetchCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(server.URL, "secret", time.Second).Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClientDefaultURL(t *testing.T) {
	assert.Equal(t, DefaultURL, NewClient("", "secret", time.Second).URL)
}
