package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/persistence"
)

// NoticeRepository encapsulates admin notice persistence.
type NoticeRepository interface {
	Create(ctx context.Context, notice *domain.AdminNotice) error
	Update(ctx context.Context, notice *domain.AdminNotice) error
	GetByID(ctx context.Context, id string) (*domain.AdminNotice, error)
	List(ctx context.Context) ([]domain.AdminNotice, error)
	Delete(ctx context.Context, id string) error
}

type noticeRepository struct {
	db persistence.Querier
}

// NewNoticeRepository instantiates repository.
func NewNoticeRepository(db persistence.Querier) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, notice *domain.AdminNotice) error {
	const query = `
        INSERT INTO admin_notices (title, message, severity, active, target_roles, priority, expires_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		notice.Title,
		notice.Message,
		notice.Severity,
		notice.Active,
		rolesToStrings(notice.TargetRoles),
		notice.Priority,
		notice.ExpiresAt,
	).Scan(&notice.ID, &notice.CreatedAt, &notice.UpdatedAt)
}

func (r *noticeRepository) Update(ctx context.Context, notice *domain.AdminNotice) error {
	const query = `
        UPDATE admin_notices SET title=$1, message=$2, severity=$3, active=$4, target_roles=$5,
            priority=$6, expires_at=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.db.Exec(ctx, query,
		notice.Title,
		notice.Message,
		notice.Severity,
		notice.Active,
		rolesToStrings(notice.TargetRoles),
		notice.Priority,
		notice.ExpiresAt,
		notice.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *noticeRepository) GetByID(ctx context.Context, id string) (*domain.AdminNotice, error) {
	const query = `
        SELECT id, title, message, severity, active, target_roles, priority, expires_at, created_at, updated_at
        FROM admin_notices WHERE id=$1`
	var notice domain.AdminNotice
	var roles []string
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&notice.ID,
		&notice.Title,
		&notice.Message,
		&notice.Severity,
		&notice.Active,
		&roles,
		&notice.Priority,
		&notice.ExpiresAt,
		&notice.CreatedAt,
		&notice.UpdatedAt,
	); err != nil {
		return nil, err
	}
	notice.TargetRoles = stringsToRoles(roles)
	return &notice, nil
}

func (r *noticeRepository) List(ctx context.Context) ([]domain.AdminNotice, error) {
	const query = `
        SELECT id, title, message, severity, active, target_roles, priority, expires_at, created_at, updated_at
        FROM admin_notices ORDER BY priority DESC, created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AdminNotice
	for rows.Next() {
		var notice domain.AdminNotice
		var roles []string
		if err := rows.Scan(
			&notice.ID,
			&notice.Title,
			&notice.Message,
			&notice.Severity,
			&notice.Active,
			&roles,
			&notice.Priority,
			&notice.ExpiresAt,
			&notice.CreatedAt,
			&notice.UpdatedAt,
		); err != nil {
			return nil, err
		}
		notice.TargetRoles = stringsToRoles(roles)
		result = append(result, notice)
	}
	return result, rows.Err()
}

func (r *noticeRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM admin_notices WHERE id=$1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func rolesToStrings(roles []domain.Role) []string {
	out := make([]string, 0, len(roles))
	for _, role := range roles {
		out = append(out, string(role))
	}
	return out
}

func stringsToRoles(values []string) []domain.Role {
	out := make([]domain.Role, 0, len(values))
	for _, val := range values {
		out = append(out, domain.Role(val))
	}
	return out
}
