package postgresql

import (
	"context"
	"fmt"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/audit"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

// Create implements audit.AuditRepository.
func (r *auditRepositoryImpl) Create(ctx context.Context, l audit.Log) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO audit_logs (id, user_id, action, entity_type, entity_id, detail, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
	`

	if _, err := q.Exec(ctx, query, l.UserID, l.Action, l.EntityType, l.EntityID, l.Detail); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// List implements audit.AuditRepository.
func (r *auditRepositoryImpl) List(ctx context.Context, limit, offset int) ([]audit.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.user_id, l.action, l.entity_type, l.entity_id, l.detail, l.created_at,
			u.username
		FROM audit_logs l
		LEFT JOIN users u ON u.id = l.user_id
		ORDER BY l.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var logs []audit.Log
	for rows.Next() {
		var l audit.Log
		err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.Action,
			&l.EntityType,
			&l.EntityID,
			&l.Detail,
			&l.CreatedAt,
			&l.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return logs, nil
}
