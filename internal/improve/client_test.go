package improve

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/julianstephens/hurryup/internal/errors"
)

func TestImprove(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(Response{Improved: "better"})
	}))
	defer srv.Close()

	out, err := New(srv.URL, time.Second).Improve(context.Background(), "draft text")
	require.NoError(t, err)
	assert.Equal(t, "better", out)
	assert.Equal(t, "draft text", got.Content)
}

func TestImproveErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantStatus  int
		wantMessage string
		wantDetails string
	}{
		{"proxy error", 502, `{"error":"Anthropic API error","details":"overloaded"}`, 502, "Anthropic API error", "overloaded"},
		{"plain text error", 405, "Method not allowed", 405, "", "Method not allowed"},
		{"missing improved", 200, `{}`, 200, "invalid response", "no improved text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL, time.Second).Improve(context.Background(), "x")
			var ese *apperrors.ExternalServiceError
			require.ErrorAs(t, err, &ese)
			assert.Equal(t, tt.wantStatus, ese.Status)
			assert.Equal(t, tt.wantMessage, ese.Message)
			assert.Equal(t, tt.wantDetails, ese.Details)
		})
	}
}

func TestImproveRejectsEmptyContent(t *testing.T) {
	_, err := New("http://127.0.0.1:0", 0).Improve(context.Background(), "  \n")
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "content", ve.Field)
}

func TestImproveTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := New(srv.URL, time.Minute).Improve(ctx, "x")

	var ese *apperrors.ExternalServiceError
	require.ErrorAs(t, err, &ese)
	assert.Zero(t, ese.Status)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
