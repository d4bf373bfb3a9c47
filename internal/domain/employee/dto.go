package employee

import (
	"mime/multipart"

	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Phone            *string `json:"phone"`
	Location         *string `json:"location"`
	DepartmentID     string  `json:"department_id"`
	JobRoleID        *string `json:"job_role_id"`
	JobTitle         string  `json:"job_title"`
	ManagerID        *string `json:"manager_id"`
	DateJoined       *string `json:"date_joined"`        // YYYY-MM-DD
	ProbationEndDate *string `json:"probation_end_date"` // YYYY-MM-DD
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if r.DateJoined != nil {
		if _, ok := validator.IsValidDate(*r.DateJoined); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_joined", Message: "date_joined must be YYYY-MM-DD"})
		}
	}
	if r.ProbationEndDate != nil {
		if _, ok := validator.IsValidDate(*r.ProbationEndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "probation_end_date", Message: "probation_end_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string  `json:"-"`
	FullName         *string `json:"full_name"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	Location         *string `json:"location"`
	DepartmentID     *string `json:"department_id"`
	JobRoleID        *string `json:"job_role_id"`
	JobTitle         *string `json:"job_title"`
	ManagerID        *string `json:"manager_id"`
	EmploymentStatus *string `json:"employment_status"`
	IsActive         *bool   `json:"is_active"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if r.EmploymentStatus != nil && !validator.IsInSlice(*r.EmploymentStatus, []string{
		string(StatusActive), string(StatusInactive), string(StatusTerminated),
	}) {
		errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "employment_status must be ACTIVE, INACTIVE or TERMINATED"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ImportCSVRequest struct {
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ImportCSVRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{Field: "file", Message: "a CSV file is required"})
	} else if r.FileHeader.Size > 10<<20 { // 10MB
		errs = append(errs, validator.ValidationError{Field: "file", Message: "file size must not exceed 10MB"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ImportCSVResponse struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	EmployeeCode     string  `json:"employee_code"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Phone            *string `json:"phone,omitempty"`
	Location         *string `json:"location,omitempty"`
	DepartmentID     string  `json:"department_id"`
	DepartmentName   *string `json:"department_name,omitempty"`
	JobRoleID        *string `json:"job_role_id,omitempty"`
	JobRoleName      *string `json:"job_role_name,omitempty"`
	JobTitle         string  `json:"job_title"`
	ManagerID        *string `json:"manager_id,omitempty"`
	DateJoined       *string `json:"date_joined,omitempty"`
	EmploymentStatus string  `json:"employment_status"`
	IsActive         bool    `json:"is_active"`
}
