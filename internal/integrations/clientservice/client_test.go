package clientservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newServer(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/", time.Second, nopLogger{})
}

func TestHTTPClient_GetClient(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/internal/clients/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"name":"Maria","phone":"+7900"}`))
	})

	got, err := client.GetClient(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "Maria", got.Name)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "+7900", *got.Phone)
}

func TestHTTPClient_GetClient_NotFound(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetClient(context.Background(), 1)
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = client.GetClientWithGracefulDegradation(context.Background(), 1)
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.NotErrorIs(t, err, ErrServiceDegraded)
}

func TestHTTPClient_GracefulDegradation(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "server error with message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"code":500,"message":"boom"}`))
			},
			wantErr: ErrInvalidResponse,
		},
		{
			name: "broken body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":`))
			},
			wantErr: ErrInvalidResponse,
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()
			client := NewClient(server.URL, 50*time.Millisecond, nopLogger{})

			_, err := client.GetClient(context.Background(), 5)
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = client.GetClientWithGracefulDegradation(context.Background(), 5)
			assert.ErrorIs(t, err, ErrServiceDegraded)
		})
	}
}
