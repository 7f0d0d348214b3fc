package repository

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func newAuditMock(t *testing.T) (pgxmock.PgxPoolIface, AuditRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewAuditRepository(mock)
}

func TestAuditRepository_Create(t *testing.T) {
	mock, repo := newAuditMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO audit_log`).
		WithArgs("article.create", "admin@example.com", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("aud-1", now))

	entry := &domain.AuditLogEntry{
		Action:   "article.create",
		Actor:    "admin@example.com",
		Metadata: map[string]any{"article_id": "art-1"},
	}
	require.NoError(t, repo.Create(context.Background(), entry))
	assert.Equal(t, "aud-1", entry.ID)
	assert.Equal(t, now, entry.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_ListAppliesFilters(t *testing.T) {
	mock, repo := newAuditMock(t)
	now := time.Now()
	actor := "admin@example.com"
	from := now.Add(-24 * time.Hour)

	columns := []string{"id", "action", "actor", "metadata", "created_at"}
	mock.ExpectQuery(`SELECT id, action, actor, metadata, created_at FROM audit_log WHERE 1=1 AND actor=\$1 AND created_at >= \$2 ORDER BY created_at DESC LIMIT 10 OFFSET 0`).
		WithArgs(actor, from).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("aud-1", "ticket.delete", actor, map[string]any{"ticket_id": "tkt-1"}, now))

	entries, err := repo.List(context.Background(), AuditFilter{
		Actor: &actor,
		From:  &from,
		Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ticket.delete", entries[0].Action)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_ListDefaultsLimit(t *testing.T) {
	mock, repo := newAuditMock(t)

	mock.ExpectQuery(`ORDER BY created_at DESC LIMIT 50 OFFSET 0`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "action", "actor", "metadata", "created_at"}))

	entries, err := repo.List(context.Background(), AuditFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
	require.NoError(t, mock.ExpectationsWereMet())
}
