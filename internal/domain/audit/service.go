package audit

import "context"

type AuditService interface {
	// Record writes an audit entry. Failures are logged and swallowed so the
	// originating action is never rolled back by audit trouble.
	Record(ctx context.Context, userID *string, action, entityType string, entityID *string, detail string)

	List(ctx context.Context, limit, offset int) ([]LogResponse, error)
}

type LogResponse struct {
	ID         string  `json:"id"`
	Username   *string `json:"username,omitempty"`
	Action     string  `json:"action"`
	EntityType string  `json:"entity_type"`
	EntityID   *string `json:"entity_id,omitempty"`
	Detail     *string `json:"detail,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
