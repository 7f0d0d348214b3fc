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

func samplePayload() IntakePayload {
	return IntakePayload{
		TicketReference: "TKT-abc-XY12",
		FullName:        "Jordan Smith",
		Email:           "jordan@example.com",
		Category:        "hardware",
		Description:     "laptop will not boot",
		SubmissionDate:  time.Now().UTC(),
		Status:          "Open",
	}
}

func TestIntakeSubmit_NotConfigured(t *testing.T) {
	client := NewIntakeClient("", time.Second, zap.NewNop())
	assert.False(t, client.Configured())
	err := client.Submit(context.Background(), samplePayload())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestIntakeSubmit_DeliversJSONPayload(t *testing.T) {
	var received IntakePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewIntakeClient(server.URL, time.Second, zap.NewNop())
	require.NoError(t, client.Submit(context.Background(), samplePayload()))
	assert.Equal(t, "TKT-abc-XY12", received.TicketReference)
	assert.Equal(t, "Open", received.Status)
}

func TestIntakeSubmit_NonSuccessStatusIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewIntakeClient(server.URL, time.Second, zap.NewNop())
	err := client.Submit(context.Background(), samplePayload())
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestIntakeSubmit_SlowUpstreamIsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewIntakeClient(server.URL, 20*time.Millisecond, zap.NewNop())
	err := client.Submit(context.Background(), samplePayload())
	assert.ErrorIs(t, err, ErrTimeout)
}
