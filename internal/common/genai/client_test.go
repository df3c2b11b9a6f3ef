// internal/common/genai/client_test.go
package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ecommerce-chatbot/internal/common/config"
	"ecommerce-chatbot/internal/common/logger"
)

func testConfig(baseURL string) config.GenAIConfig {
	return config.GenAIConfig{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		Model:      "gemini-1.5-flash",
		Timeout:    5000,
		MaxRetries: 2,
	}
}

func generationBody(text string) string {
	resp := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
				},
			},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestClient_Generate_Success(t *testing.T) {
	var gotPath string
	var gotBody generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(generationBody("Your order #5 is Shipped.")))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))

	text, err := client.Generate(context.Background(), "where is order 5?")

	assert.NoError(t, err)
	assert.Equal(t, "Your order #5 is Shipped.", text)
	assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", gotPath)
	assert.Equal(t, "where is order 5?", gotBody.Contents[0].Parts[0].Text)
}

func TestClient_Generate_Unconfigured(t *testing.T) {
	cfg := testConfig("http://localhost:1")
	cfg.APIKey = ""
	client := NewClient(cfg, logger.NewNoOpLogger())

	_, err := client.Generate(context.Background(), "hi")

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Generate_RetriesThenSucceeds(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(generationBody("ok")))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())

	text, err := client.Generate(context.Background(), "hi")

	assert.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestClient_Generate_PersistentFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())

	_, err := client.Generate(context.Background(), "hi")

	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestClient_Generate_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(generationBody("too late")))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, "hi")

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_Generate_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())

	_, err := client.Generate(context.Background(), "hi")

	assert.ErrorIs(t, err, ErrGenerationFailed)
}
