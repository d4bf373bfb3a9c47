package employee

import "time"

type EmploymentStatus string

const (
	StatusActive     EmploymentStatus = "ACTIVE"
	StatusInactive   EmploymentStatus = "INACTIVE"
	StatusTerminated EmploymentStatus = "TERMINATED"
)

type Employee struct {
	ID               string
	EmployeeCode     string
	FullName         string
	Email            string
	Phone            *string
	Location         *string
	DepartmentID     string
	JobRoleID        *string
	JobTitle         string
	ManagerID        *string
	DateJoined       *time.Time
	EmploymentStatus EmploymentStatus
	ProbationEndDate *time.Time
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	DepartmentName *string
	JobRoleName    *string
}
