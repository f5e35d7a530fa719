package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"studyspace_backend/internal/config"
	"studyspace_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataFetchOEmbed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://youtu.be/abc", r.URL.Query().Get("url"))
		w.Write([]byte(`{"title":"Go Concurrency Patterns","author_name":"someone"}`))
	}))
	defer server.Close()

	svc := NewMetadataService(config.MediaConfig{OEmbedEndpoint: server.URL}, nil)

	title, duration, err := svc.Fetch(context.Background(), "https://youtu.be/abc")
	require.NoError(t, err)
	assert.Equal(t, "Go Concurrency Patterns", title)
	// oEmbed 不返回时长
	assert.Equal(t, 0, duration)
}

func TestMetadataFetchOEmbedFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewMetadataService(config.MediaConfig{OEmbedEndpoint: server.URL}, nil)

	_, _, err := svc.Fetch(context.Background(), "https://youtu.be/missing")
	assert.ErrorIs(t, err, util.ErrMetadataUnavailable)
}

func TestMetadataFetchLocalMissingFile(t *testing.T) {
	svc := NewMetadataService(config.MediaConfig{}, nil)

	_, _, err := svc.Fetch(context.Background(), "no-such-file.mp4")
	assert.ErrorIs(t, err, util.ErrMetadataUnavailable)
}
