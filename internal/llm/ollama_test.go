package llm

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

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:         srv.URL,
		Model:           "llama2",
		GenerateTimeout: 2,
		HealthTimeout:   1,
	})
}

func TestGenerateSuccess(t *testing.T) {
	var gotReq map[string]any
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]string{"response": "  an answer \n"})
	})

	got, err := client.Generate(context.Background(), "a prompt", GenerateOptions{
		Temperature: 0.3,
		TopP:        0.9,
		MaxTokens:   600,
	})

	require.NoError(t, err)
	assert.Equal(t, "an answer", got, "completion is trimmed")
	assert.Equal(t, "llama2", gotReq["model"])
	assert.Equal(t, "a prompt", gotReq["prompt"])
	assert.Equal(t, false, gotReq["stream"])

	opts, ok := gotReq["options"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 0.3, opts["temperature"], 0.001)
	assert.InDelta(t, 0.9, opts["top_p"], 0.001)
	assert.EqualValues(t, 600, opts["num_predict"])
}

func TestGenerateNonSuccessStatus(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Generate(context.Background(), "p", GenerateOptions{})
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestGenerateUnreachableBackend(t *testing.T) {
	client := NewClient(Config{
		BaseURL:         "http://127.0.0.1:1",
		Model:           "llama2",
		GenerateTimeout: 1,
		HealthTimeout:   1,
	})

	_, err := client.Generate(context.Background(), "p", GenerateOptions{})
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestGenerateTimeout(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	start := time.Now()
	_, err := client.Generate(context.Background(), "p", GenerateOptions{})

	require.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second, "call is bounded by the generate timeout")
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		models  []string
		healthy bool
	}{
		{"model present", http.StatusOK, []string{"llama2:latest"}, true},
		{"model with exact name", http.StatusOK, []string{"llama2"}, true},
		{"model absent", http.StatusOK, []string{"mistral:latest"}, false},
		{"no models", http.StatusOK, nil, false},
		{"non-success status", http.StatusServiceUnavailable, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/tags", r.URL.Path)
				if tt.status != http.StatusOK {
					w.WriteHeader(tt.status)
					return
				}
				type m struct {
					Name string `json:"name"`
				}
				var models []m
				for _, name := range tt.models {
					models = append(models, m{Name: name})
				}
				json.NewEncoder(w).Encode(map[string]any{"models": models})
			})

			assert.Equal(t, tt.healthy, client.CheckHealth(context.Background()))
		})
	}
}

func TestCheckHealthUnreachable(t *testing.T) {
	client := NewClient(Config{
		BaseURL:         "http://127.0.0.1:1",
		Model:           "llama2",
		GenerateTimeout: 1,
		HealthTimeout:   1,
	})

	assert.False(t, client.CheckHealth(context.Background()))
}
