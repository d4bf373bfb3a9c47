package employee

import "context"

type EmployeeService interface {
	// Create registers an employee, assigning the next VAE-NNNN code
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)

	// ImportCSV bulk-creates or updates employees from an uploaded CSV;
	// row failures are collected, not fatal
	ImportCSV(ctx context.Context, req ImportCSVRequest) (ImportCSVResponse, error)
}
