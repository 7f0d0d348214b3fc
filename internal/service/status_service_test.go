package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/webhook"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

type fakeStatusLookup struct {
	configured bool
	result     *webhook.StatusResult
	err        error
	calls      int
}

func (f *fakeStatusLookup) Configured() bool { return f.configured }

func (f *fakeStatusLookup) Lookup(_ context.Context, _ string) (*webhook.StatusResult, error) {
	f.calls++
	return f.result, f.err
}

func TestStatusResolve_EmptyQuerySkipsLookup(t *testing.T) {
	lookup := &fakeStatusLookup{configured: true}
	svc := NewStatusService(lookup, zap.NewNop())

	_, err := svc.Resolve(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	assert.Zero(t, lookup.calls)
}

func TestStatusResolve_UnconfiguredFailsClosed(t *testing.T) {
	lookup := &fakeStatusLookup{configured: false}
	svc := NewStatusService(lookup, zap.NewNop())

	_, err := svc.Resolve(context.Background(), "TKT-ABC")
	require.Error(t, err)
	assert.Equal(t, "SERVICE_UNAVAILABLE", apperrors.ToDomainError(err).Code)
	assert.Zero(t, lookup.calls)
}

func TestStatusResolve_Found(t *testing.T) {
	lookup := &fakeStatusLookup{
		configured: true,
		result: &webhook.StatusResult{
			Found:  true,
			Ticket: webhook.TicketStatusView{Reference: "TKT-ABC", Status: "Open", Priority: "HIGH"},
		},
	}
	svc := NewStatusService(lookup, zap.NewNop())

	outcome, err := svc.Resolve(context.Background(), "TKT-ABC")
	require.NoError(t, err)
	assert.True(t, outcome.Found)
	require.NotNil(t, outcome.Ticket)
	assert.Equal(t, "TKT-ABC", outcome.Ticket.Reference)
	assert.Empty(t, outcome.Message)
}

func TestStatusResolve_NotFoundAndUpstreamFailureAreIndistinguishable(t *testing.T) {
	notFound := &fakeStatusLookup{configured: true, result: &webhook.StatusResult{Found: false}}
	down := &fakeStatusLookup{configured: true, err: webhook.ErrUpstream}
	svc1 := NewStatusService(notFound, zap.NewNop())
	svc2 := NewStatusService(down, zap.NewNop())

	o1, err := svc1.Resolve(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	o2, err := svc2.Resolve(context.Background(), "nobody@example.com")
	require.NoError(t, err)

	assert.False(t, o1.Found)
	assert.False(t, o2.Found)
	assert.Equal(t, o1.Message, o2.Message, "the portal must not reveal whether the tracker was down")
	assert.NotEmpty(t, o1.Message)
}
