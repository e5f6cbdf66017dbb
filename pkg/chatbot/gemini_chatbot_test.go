package chatbot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiReply(text string) GeminiChatResponse {
	return GeminiChatResponse{
		Candidates: []*GeminiChatCandidate{
			{
				Content: &GeminiChatContent{
					Parts: []*GeminiChatParts{{Text: text}},
					Role:  "model",
				},
				FinishReason: "STOP",
			},
		},
	}
}

func TestGeminiComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req GeminiChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)

		json.NewEncoder(w).Encode(geminiReply("hi back"))
	}))
	defer srv.Close()

	provider := NewGeminiProvider("test-key", "gemini-1.5-flash", time.Second).WithBaseURL(srv.URL)

	reply, err := provider.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi back", reply)
}

func TestGeminiPromptBlocked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GeminiChatResponse{
			PromptFeedback: &GeminiPromptFeedback{BlockReason: "SAFETY"},
		})
	}))
	defer srv.Close()

	provider := NewGeminiProvider("test-key", "gemini-1.5-flash", time.Second).WithBaseURL(srv.URL)

	_, err := provider.Complete(context.Background(), "something off-limits")
	assert.ErrorIs(t, err, ErrSafetyBlocked)
}

func TestGeminiCandidateBlocked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GeminiChatResponse{
			Candidates: []*GeminiChatCandidate{{FinishReason: "SAFETY"}},
		})
	}))
	defer srv.Close()

	provider := NewGeminiProvider("test-key", "gemini-1.5-flash", time.Second).WithBaseURL(srv.URL)

	_, err := provider.Complete(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrSafetyBlocked)
}

func TestGeminiUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	provider := NewGeminiProvider("test-key", "gemini-1.5-flash", time.Second).WithBaseURL(srv.URL)

	_, err := provider.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSafetyBlocked)
}

func TestGeminiEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GeminiChatResponse{})
	}))
	defer srv.Close()

	provider := NewGeminiProvider("test-key", "gemini-1.5-flash", time.Second).WithBaseURL(srv.URL)

	_, err := provider.Complete(context.Background(), "hello")
	require.Error(t, err)
}

func TestNewProviderFactory(t *testing.T) {
	p, err := NewProvider("gemini", "", "key", time.Second)
	require.NoError(t, err)
	assert.IsType(t, &GeminiProvider{}, p)

	p, err = NewProvider("openai", "", "key", time.Second)
	require.NoError(t, err)
	assert.IsType(t, &OpenAIProvider{}, p)

	_, err = NewProvider("unknown", "", "key", time.Second)
	assert.Error(t, err)
}
