package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, e Employee) error
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)

	// GetActive returns employees with is_active = true, used by ingestion
	// matching, monthly aggregation and payroll composition
	GetActive(ctx context.Context) ([]Employee, error)

	// LastEmployeeCode returns the most recently assigned employee code,
	// or "" when no employee exists yet
	LastEmployeeCode(ctx context.Context) (string, error)

	// UpsertByCode updates the employee carrying the code or creates a new
	// one; used by CSV bulk import
	UpsertByCode(ctx context.Context, e Employee) (Employee, bool, error)
}
