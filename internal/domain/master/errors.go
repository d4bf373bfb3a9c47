package master

import "errors"

var (
	ErrBranchNotFound          = errors.New("branch not found")
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrJobRoleNotFound         = errors.New("job role not found")
	ErrSalaryStructureNotFound = errors.New("salary structure not found")
	ErrSalaryStructureExists   = errors.New("job role already has a salary structure")
)
