package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTransition(t *testing.T) {
	tests := []struct {
		from TicketStatus
		to   TicketStatus
		want bool
	}{
		{TicketStatusOpen, TicketStatusInProgress, true},
		{TicketStatusOpen, TicketStatusResolved, true},
		{TicketStatusOpen, TicketStatusClosed, true},
		{TicketStatusInProgress, TicketStatusResolved, true},
		{TicketStatusInProgress, TicketStatusOpen, false},
		{TicketStatusResolved, TicketStatusInProgress, true},
		{TicketStatusResolved, TicketStatusOpen, false},
		{TicketStatusClosed, TicketStatusInProgress, false},
		{TicketStatusClosed, TicketStatusOpen, false},
		{TicketStatusOpen, TicketStatusOpen, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ValidTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidStatusAndPriority(t *testing.T) {
	assert.True(t, ValidStatus(TicketStatusOpen))
	assert.False(t, ValidStatus("ARCHIVED"))
	assert.True(t, ValidPriority(TicketPriorityCritical))
	assert.False(t, ValidPriority("URGENT"))
}
