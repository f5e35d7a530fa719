package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"studyspace_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAudioFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lecture.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF fake audio"), 0644))
	return path
}

func newTranscribeServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/transcriptions", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))
		_, _, err := r.FormFile("file")
		require.NoError(t, err)

		w.Write([]byte(reply))
	}))
}

func TestTranscribeAudioFile(t *testing.T) {
	server := newTranscribeServer(t, `{"text":"hello from the lecture"}`)
	defer server.Close()

	svc := NewTranscribeService(config.MediaConfig{TranscribeURL: server.URL})

	text, err := svc.Transcribe(context.Background(), writeAudioFile(t))
	require.NoError(t, err)
	assert.Equal(t, "hello from the lecture", text)
}

func TestTranscribeEmptyResultReturnsSentinel(t *testing.T) {
	server := newTranscribeServer(t, `{"text":"  "}`)
	defer server.Close()

	svc := NewTranscribeService(config.MediaConfig{TranscribeURL: server.URL})

	text, err := svc.Transcribe(context.Background(), writeAudioFile(t))
	require.NoError(t, err)
	assert.Equal(t, TranscriptNotUnderstood, text)
}

func TestTranscribeAPIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewTranscribeService(config.MediaConfig{TranscribeURL: server.URL})

	_, err := svc.Transcribe(context.Background(), writeAudioFile(t))
	assert.Error(t, err)
}

func TestTranscribeMissingFile(t *testing.T) {
	svc := NewTranscribeService(config.MediaConfig{TranscribeURL: "http://127.0.0.1:0"})

	_, err := svc.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}
