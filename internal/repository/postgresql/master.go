package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/master"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/database"
)

type branchRepositoryImpl struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) master.BranchRepository {
	return &branchRepositoryImpl{db: db}
}

// Create implements master.BranchRepository.
func (r *branchRepositoryImpl) Create(ctx context.Context, b master.Branch) (master.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO branches (id, name, location, created_at)
		VALUES (uuidv7(), $1, $2, NOW())
		RETURNING id, name, location, created_at
	`

	var result master.Branch
	err := q.QueryRow(ctx, query, b.Name, b.Location).Scan(
		&result.ID,
		&result.Name,
		&result.Location,
		&result.CreatedAt,
	)

	if err != nil {
		return master.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return result, nil
}

// GetByID implements master.BranchRepository.
func (r *branchRepositoryImpl) GetByID(ctx context.Context, id string) (master.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, location, created_at
		FROM branches
		WHERE id = $1
	`

	var result master.Branch
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Location,
		&result.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return master.Branch{}, master.ErrBranchNotFound
		}
		return master.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return result, nil
}

// List implements master.BranchRepository.
func (r *branchRepositoryImpl) List(ctx context.Context) ([]master.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, location, created_at
		FROM branches
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []master.Branch
	for rows.Next() {
		var b master.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Location, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return branches, nil
}

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) master.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements master.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d master.Department) (master.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, description, created_at)
		VALUES (uuidv7(), $1, $2, NOW())
		RETURNING id, name, description, created_at
	`

	var result master.Department
	err := q.QueryRow(ctx, query, d.Name, d.Description).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.CreatedAt,
	)

	if err != nil {
		return master.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return result, nil
}

// GetByID implements master.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (master.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at
		FROM departments
		WHERE id = $1
	`

	var result master.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return master.Department{}, master.ErrDepartmentNotFound
		}
		return master.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return result, nil
}

// GetOrCreateByName implements master.DepartmentRepository.
func (r *departmentRepositoryImpl) GetOrCreateByName(ctx context.Context, name string) (master.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, created_at)
		VALUES (uuidv7(), $1, NOW())
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, description, created_at
	`

	var result master.Department
	err := q.QueryRow(ctx, query, name).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.CreatedAt,
	)

	if err != nil {
		return master.Department{}, fmt.Errorf("failed to get or create department: %w", err)
	}

	return result, nil
}

// List implements master.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]master.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at
		FROM departments
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []master.Department
	for rows.Next() {
		var d master.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return departments, nil
}

type jobRoleRepositoryImpl struct {
	db *database.DB
}

func NewJobRoleRepository(db *database.DB) master.JobRoleRepository {
	return &jobRoleRepositoryImpl{db: db}
}

const jobRoleColumns = `
	r.id, r.name, r.description, r.department_id, r.shift_start, r.shift_end,
	r.work_pattern, r.created_at, d.name AS department_name
`

// Create implements master.JobRoleRepository.
func (r *jobRoleRepositoryImpl) Create(ctx context.Context, jr master.JobRole) (master.JobRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_roles (id, name, description, department_id, shift_start, shift_end, work_pattern, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, name, description, department_id, shift_start, shift_end, work_pattern, created_at
	`

	var result master.JobRole
	err := q.QueryRow(ctx, query,
		jr.Name, jr.Description, jr.DepartmentID, jr.ShiftStart, jr.ShiftEnd, jr.WorkPattern,
	).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.DepartmentID,
		&result.ShiftStart,
		&result.ShiftEnd,
		&result.WorkPattern,
		&result.CreatedAt,
	)

	if err != nil {
		return master.JobRole{}, fmt.Errorf("failed to create job role: %w", err)
	}

	return result, nil
}

// Update implements master.JobRoleRepository.
func (r *jobRoleRepositoryImpl) Update(ctx context.Context, jr master.JobRole) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_roles
		SET name = $1, description = $2, department_id = $3,
			shift_start = $4, shift_end = $5, work_pattern = $6
		WHERE id = $7
	`

	commandTag, err := q.Exec(ctx, query,
		jr.Name, jr.Description, jr.DepartmentID, jr.ShiftStart, jr.ShiftEnd, jr.WorkPattern, jr.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job role: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return master.ErrJobRoleNotFound
	}

	return nil
}

// GetByID implements master.JobRoleRepository.
func (r *jobRoleRepositoryImpl) GetByID(ctx context.Context, id string) (master.JobRole, error) {
	return r.getOne(ctx, "r.id = $1", id)
}

// GetByName implements master.JobRoleRepository.
func (r *jobRoleRepositoryImpl) GetByName(ctx context.Context, name string) (master.JobRole, error) {
	return r.getOne(ctx, "LOWER(r.name) = LOWER($1)", name)
}

func (r *jobRoleRepositoryImpl) getOne(ctx context.Context, where string, arg any) (master.JobRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobRoleColumns + `
		FROM job_roles r
		JOIN departments d ON d.id = r.department_id
		WHERE ` + where

	var result master.JobRole
	err := q.QueryRow(ctx, query, arg).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.DepartmentID,
		&result.ShiftStart,
		&result.ShiftEnd,
		&result.WorkPattern,
		&result.CreatedAt,
		&result.DepartmentName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return master.JobRole{}, master.ErrJobRoleNotFound
		}
		return master.JobRole{}, fmt.Errorf("failed to get job role: %w", err)
	}

	return result, nil
}

// List implements master.JobRoleRepository.
func (r *jobRoleRepositoryImpl) List(ctx context.Context) ([]master.JobRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobRoleColumns + `
		FROM job_roles r
		JOIN departments d ON d.id = r.department_id
		ORDER BY r.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list job roles: %w", err)
	}
	defer rows.Close()

	var roles []master.JobRole
	for rows.Next() {
		var jr master.JobRole
		err := rows.Scan(
			&jr.ID,
			&jr.Name,
			&jr.Description,
			&jr.DepartmentID,
			&jr.ShiftStart,
			&jr.ShiftEnd,
			&jr.WorkPattern,
			&jr.CreatedAt,
			&jr.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job role: %w", err)
		}
		roles = append(roles, jr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

// GetSalaryStructure implements master.JobRoleRepository.
func (r *jobRoleRepositoryImpl) GetSalaryStructure(ctx context.Context, jobRoleID string) (master.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, job_role_id, basic_salary, housing_allowance, transport_allowance,
			medical_allowance, utility_allowance, other_allowances,
			late_deduction_rate, absent_deduction_rate
		FROM salary_structures
		WHERE job_role_id = $1
	`

	var result master.SalaryStructure
	err := q.QueryRow(ctx, query, jobRoleID).Scan(
		&result.ID,
		&result.JobRoleID,
		&result.BasicSalary,
		&result.HousingAllowance,
		&result.TransportAllowance,
		&result.MedicalAllowance,
		&result.UtilityAllowance,
		&result.OtherAllowances,
		&result.LateDeductionRate,
		&result.AbsentDeductionRate,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return master.SalaryStructure{}, master.ErrSalaryStructureNotFound
		}
		return master.SalaryStructure{}, fmt.Errorf("failed to get salary structure: %w", err)
	}

	return result, nil
}

// UpsertSalaryStructure implements master.JobRoleRepository.
func (r *jobRoleRepositoryImpl) UpsertSalaryStructure(ctx context.Context, s master.SalaryStructure) (master.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_structures (
			id, job_role_id, basic_salary, housing_allowance, transport_allowance,
			medical_allowance, utility_allowance, other_allowances,
			late_deduction_rate, absent_deduction_rate
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (job_role_id) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			housing_allowance = EXCLUDED.housing_allowance,
			transport_allowance = EXCLUDED.transport_allowance,
			medical_allowance = EXCLUDED.medical_allowance,
			utility_allowance = EXCLUDED.utility_allowance,
			other_allowances = EXCLUDED.other_allowances,
			late_deduction_rate = EXCLUDED.late_deduction_rate,
			absent_deduction_rate = EXCLUDED.absent_deduction_rate
		RETURNING id, job_role_id, basic_salary, housing_allowance, transport_allowance,
			medical_allowance, utility_allowance, other_allowances,
			late_deduction_rate, absent_deduction_rate
	`

	var result master.SalaryStructure
	err := q.QueryRow(ctx, query,
		s.JobRoleID, s.BasicSalary, s.HousingAllowance, s.TransportAllowance,
		s.MedicalAllowance, s.UtilityAllowance, s.OtherAllowances,
		s.LateDeductionRate, s.AbsentDeductionRate,
	).Scan(
		&result.ID,
		&result.JobRoleID,
		&result.BasicSalary,
		&result.HousingAllowance,
		&result.TransportAllowance,
		&result.MedicalAllowance,
		&result.UtilityAllowance,
		&result.OtherAllowances,
		&result.LateDeductionRate,
		&result.AbsentDeductionRate,
	)

	if err != nil {
		return master.SalaryStructure{}, fmt.Errorf("failed to upsert salary structure: %w", err)
	}

	return result, nil
}
