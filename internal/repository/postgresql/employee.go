package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/employee"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.full_name, e.email, e.phone, e.location,
	e.department_id, e.job_role_id, e.job_title, e.manager_id, e.date_joined,
	e.employment_status, e.probation_end_date, e.is_active, e.created_at, e.updated_at,
	d.name AS department_name, r.name AS job_role_name
`

const employeeJoins = `
	FROM employees e
	JOIN departments d ON d.id = e.department_id
	LEFT JOIN job_roles r ON r.id = e.job_role_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.EmployeeCode,
		&e.FullName,
		&e.Email,
		&e.Phone,
		&e.Location,
		&e.DepartmentID,
		&e.JobRoleID,
		&e.JobTitle,
		&e.ManagerID,
		&e.DateJoined,
		&e.EmploymentStatus,
		&e.ProbationEndDate,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.DepartmentName,
		&e.JobRoleName,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO employees (
				id, employee_code, full_name, email, phone, location,
				department_id, job_role_id, job_title, manager_id, date_joined,
				employment_status, probation_end_date, is_active, created_at, updated_at
			)
			VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
			RETURNING *
		)
		SELECT ` + strings.ReplaceAll(employeeColumns, "e.", "inserted.") + `
		FROM inserted
		JOIN departments d ON d.id = inserted.department_id
		LEFT JOIN job_roles r ON r.id = inserted.job_role_id
	`

	result, err := scanEmployee(q.QueryRow(ctx, query,
		e.EmployeeCode, e.FullName, e.Email, e.Phone, e.Location,
		e.DepartmentID, e.JobRoleID, e.JobTitle, e.ManagerID, e.DateJoined,
		e.EmploymentStatus, e.ProbationEndDate, e.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1, email = $2, phone = $3, location = $4,
			department_id = $5, job_role_id = $6, job_title = $7, manager_id = $8,
			date_joined = $9, employment_status = $10, probation_end_date = $11,
			is_active = $12, updated_at = NOW()
		WHERE id = $13
	`

	commandTag, err := q.Exec(ctx, query,
		e.FullName, e.Email, e.Phone, e.Location,
		e.DepartmentID, e.JobRoleID, e.JobTitle, e.ManagerID,
		e.DateJoined, e.EmploymentStatus, e.ProbationEndDate,
		e.IsActive, e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.getOne(ctx, "e.id = $1", id)
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return r.getOne(ctx, "e.employee_code = $1", code)
}

func (r *employeeRepositoryImpl) getOne(ctx context.Context, where string, arg any) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE ` + where

	result, err := scanEmployee(q.QueryRow(ctx, query, arg))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return result, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, "")
}

// GetActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, "WHERE e.is_active = TRUE")
}

func (r *employeeRepositoryImpl) list(ctx context.Context, where string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + where + ` ORDER BY e.employee_code ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// LastEmployeeCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) LastEmployeeCode(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	// Lexicographic ordering breaks once the numeric suffix grows a digit,
	// so order by the suffix as an integer
	query := `
		SELECT employee_code
		FROM employees
		WHERE employee_code ~ '^VAE-[0-9]+$'
		ORDER BY split_part(employee_code, '-', 2)::int DESC
		LIMIT 1
	`

	var code string
	err := q.QueryRow(ctx, query).Scan(&code)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to get last employee code: %w", err)
	}

	return code, nil
}

// UpsertByCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpsertByCode(ctx context.Context, e employee.Employee) (employee.Employee, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH upserted AS (
			INSERT INTO employees (
				id, employee_code, full_name, email, phone, location,
				department_id, job_role_id, job_title, manager_id, date_joined,
				employment_status, probation_end_date, is_active, created_at, updated_at
			)
			VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
			ON CONFLICT (employee_code) DO UPDATE SET
				full_name = EXCLUDED.full_name,
				email = EXCLUDED.email,
				phone = EXCLUDED.phone,
				location = EXCLUDED.location,
				department_id = EXCLUDED.department_id,
				job_role_id = EXCLUDED.job_role_id,
				job_title = EXCLUDED.job_title,
				updated_at = NOW()
			RETURNING *, (xmax = 0) AS inserted
		)
		SELECT ` + strings.ReplaceAll(employeeColumns, "e.", "upserted.") + `, upserted.inserted
		FROM upserted
		JOIN departments d ON d.id = upserted.department_id
		LEFT JOIN job_roles r ON r.id = upserted.job_role_id
	`

	var result employee.Employee
	var created bool
	err := q.QueryRow(ctx, query,
		e.EmployeeCode, e.FullName, e.Email, e.Phone, e.Location,
		e.DepartmentID, e.JobRoleID, e.JobTitle, e.ManagerID, e.DateJoined,
		e.EmploymentStatus, e.ProbationEndDate, e.IsActive,
	).Scan(
		&result.ID,
		&result.EmployeeCode,
		&result.FullName,
		&result.Email,
		&result.Phone,
		&result.Location,
		&result.DepartmentID,
		&result.JobRoleID,
		&result.JobTitle,
		&result.ManagerID,
		&result.DateJoined,
		&result.EmploymentStatus,
		&result.ProbationEndDate,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
		&result.DepartmentName,
		&result.JobRoleName,
		&created,
	)
	if err != nil {
		return employee.Employee{}, false, fmt.Errorf("failed to upsert employee: %w", err)
	}

	return result, created, nil
}
