package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studyspace_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		resp := ChatCompletionResponse{}
		resp.Choices = []struct {
			Message AIChatMessage `json:"message"`
		}{
			{Message: AIChatMessage{Role: "assistant", Content: reply}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestAIService(baseURL string) *AIService {
	return NewAIService(config.AIConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "test-model",
	})
}

func TestAIAnalyze(t *testing.T) {
	server := newChatServer(t, `{"label":"POSITIVE","score":0.85}`)
	defer server.Close()

	label, score, err := newTestAIService(server.URL).Analyze(context.Background(), "great video")
	require.NoError(t, err)
	assert.Equal(t, "POSITIVE", label)
	assert.Equal(t, 0.85, score)
}

func TestAIAnalyzeStripsCodeFence(t *testing.T) {
	server := newChatServer(t, "```json\n{\"label\":\"NEGATIVE\",\"score\":0.7}\n```")
	defer server.Close()

	label, score, err := newTestAIService(server.URL).Analyze(context.Background(), "boring")
	require.NoError(t, err)
	assert.Equal(t, "NEGATIVE", label)
	assert.Equal(t, 0.7, score)
}

func TestAIAnalyzeClampsScore(t *testing.T) {
	server := newChatServer(t, `{"label":"POSITIVE","score":1.7}`)
	defer server.Close()

	_, score, err := newTestAIService(server.URL).Analyze(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestAIAnalyzeBadPayload(t *testing.T) {
	server := newChatServer(t, "not json at all")
	defer server.Close()

	_, _, err := newTestAIService(server.URL).Analyze(context.Background(), "x")
	assert.Error(t, err)
}

func TestAISummarize(t *testing.T) {
	server := newChatServer(t, "一段简短的摘要")
	defer server.Close()

	summary, err := newTestAIService(server.URL).Summarize(context.Background(), "很长的笔记……")
	require.NoError(t, err)
	assert.Equal(t, "一段简短的摘要", summary)
}

func TestAIServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestAIService(server.URL).Summarize(context.Background(), "x")
	assert.Error(t, err)
}
