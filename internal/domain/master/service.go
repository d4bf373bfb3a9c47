package master

import "context"

// MasterService manages reference data: branches, departments, job roles and
// the salary structure each job role owns.
type MasterService interface {
	CreateBranch(ctx context.Context, req CreateBranchRequest) (Branch, error)
	ListBranches(ctx context.Context) ([]Branch, error)

	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (Department, error)
	ListDepartments(ctx context.Context) ([]Department, error)

	CreateJobRole(ctx context.Context, req CreateJobRoleRequest) (JobRoleResponse, error)
	GetJobRole(ctx context.Context, id string) (JobRoleResponse, error)
	ListJobRoles(ctx context.Context) ([]JobRoleResponse, error)

	UpsertSalaryStructure(ctx context.Context, req UpsertSalaryStructureRequest) (SalaryStructureResponse, error)
	GetSalaryStructure(ctx context.Context, jobRoleID string) (SalaryStructureResponse, error)
}
