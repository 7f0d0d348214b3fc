package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatusLookup_NotConfigured(t *testing.T) {
	client := NewStatusClient("", time.Second, zap.NewNop())
	_, err := client.Lookup(context.Background(), "TKT-ABC")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestStatusLookup_ForwardsQueryAndDecodesResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var query StatusQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&query))
		assert.Equal(t, "jordan@example.com", query.Query)

		_ = json.NewEncoder(w).Encode(StatusResult{
			Found:  true,
			Ticket: TicketStatusView{Reference: "TKT-ABC", Status: "In Progress"},
		})
	}))
	defer server.Close()

	client := NewStatusClient(server.URL, time.Second, zap.NewNop())
	result, err := client.Lookup(context.Background(), "jordan@example.com")
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, "TKT-ABC", result.Ticket.Reference)
}

func TestStatusLookup_NonSuccessStatusIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewStatusClient(server.URL, time.Second, zap.NewNop())
	_, err := client.Lookup(context.Background(), "TKT-ABC")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestStatusLookup_MalformedBodyIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewStatusClient(server.URL, time.Second, zap.NewNop())
	_, err := client.Lookup(context.Background(), "TKT-ABC")
	assert.ErrorIs(t, err, ErrUpstream)
}
