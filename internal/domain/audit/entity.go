package audit

import "time"

// Log is one recorded mutating action. Writes are best effort and never
// fail the action they describe.
type Log struct {
	ID         string
	UserID     *string
	Action     string
	EntityType string
	EntityID   *string
	Detail     *string
	CreatedAt  time.Time

	// Joined fields
	Username *string
}

const (
	ActionCreate  = "CREATE"
	ActionUpdate  = "UPDATE"
	ActionDelete  = "DELETE"
	ActionProcess = "PROCESS"
	ActionApprove = "APPROVE"
	ActionUpload  = "UPLOAD"
	ActionLogin   = "LOGIN"
)
