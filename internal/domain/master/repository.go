package master

import "context"

type BranchRepository interface {
	Create(ctx context.Context, b Branch) (Branch, error)
	GetByID(ctx context.Context, id string) (Branch, error)
	List(ctx context.Context) ([]Branch, error)
}

type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	// GetOrCreateByName is used by the employee CSV importer
	GetOrCreateByName(ctx context.Context, name string) (Department, error)
	List(ctx context.Context) ([]Department, error)
}

type JobRoleRepository interface {
	Create(ctx context.Context, r JobRole) (JobRole, error)
	Update(ctx context.Context, r JobRole) error
	GetByID(ctx context.Context, id string) (JobRole, error)
	GetByName(ctx context.Context, name string) (JobRole, error)
	List(ctx context.Context) ([]JobRole, error)

	// GetSalaryStructure returns the structure owned by the job role,
	// or ErrSalaryStructureNotFound
	GetSalaryStructure(ctx context.Context, jobRoleID string) (SalaryStructure, error)
	UpsertSalaryStructure(ctx context.Context, s SalaryStructure) (SalaryStructure, error)
}
