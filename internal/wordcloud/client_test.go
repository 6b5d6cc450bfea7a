package wordcloud

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/at-ishikawa/lemon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRequest(t *testing.T) {
	tests := []struct {
		name   string
		scores map[string]int
		want   string
	}{
		{
			name:   "single word",
			scores: map[string]int{"Go": 10},
			want:   `{"words_with_scores":{"Go":10}}`,
		},
		{
			name:   "symbols are kept as is",
			scores: map[string]int{"C++": 70, "<html>": 1},
			want:   `{"words_with_scores":{"<html>":1,"C++":70}}`,
		},
		{
			name:   "nil scores",
			scores: nil,
			want:   `{"words_with_scores":{}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeRequest(tt.scores)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestDecodeImage(t *testing.T) {
	pngData := testutil.PNG(t, 3, 2)

	got, err := DecodeImage(pngData)
	require.NoError(t, err)
	assert.Equal(t, "image/png", got.MIME)
	assert.Equal(t, 3, got.Width)
	assert.Equal(t, 2, got.Height)
	assert.Equal(t, pngData, got.Data)

	for name, data := range map[string][]byte{
		"empty":         nil,
		"json":          []byte(`{"error":"boom"}`),
		"truncated png": pngData[:12],
		"plain text":    []byte("not an image"),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeImage(data)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestClient_Generate(t *testing.T) {
	pngData := testutil.PNG(t, 4, 4)

	tests := []struct {
		name              string
		scores            map[string]int
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)
		wantWidth         int
		wantErr           error
	}{
		{
			name:   "returns the image",
			scores: map[string]int{"Go": 10},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/generate_wordcloud", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.JSONEq(t, `{"words_with_scores":{"Go":10}}`, string(body))

				w.Header().Set("Content-Type", "image/png")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write(pngData)
			},
			wantWidth: 4,
		},
		{
			name:   "non-image body",
			scores: map[string]int{"Go": 10},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"status":"ok"}`))
			},
			wantErr: ErrDecode,
		},
		{
			name:   "server error",
			scores: map[string]int{"Go": 10},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write(pngData)
			},
			wantErr: ErrNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL + "/")
			defer func() {
				_ = client.Close()
			}()

			got, err := client.Generate(context.Background(), tt.scores)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, got.Width)
			assert.Equal(t, pngData, got.Data)
		})
	}
}

func TestClient_Generate_ServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL)
	defer func() {
		_ = client.Close()
	}()

	_, err := client.Generate(context.Background(), DefaultScores)
	assert.ErrorIs(t, err, ErrNetwork)
}
