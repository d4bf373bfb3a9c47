package audit

import "context"

type AuditRepository interface {
	Create(ctx context.Context, l Log) error
	List(ctx context.Context, limit, offset int) ([]Log, error)
}
