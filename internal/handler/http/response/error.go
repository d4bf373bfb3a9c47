package response

import (
	"errors"
	"net/http"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/attendance"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/auth"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/employee"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/kpi"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/master"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/payroll"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/user"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Column detection failures carry the recognized columns as details
	var detectionErr *attendance.ColumnDetectionError
	if errors.As(err, &detectionErr) {
		BadRequest(w, "Could not auto-detect required spreadsheet columns", detectionErr.Found)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserDisabled):
		Forbidden(w, "User account is disabled")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrAdminOrHRRequired),
		errors.Is(err, user.ErrFinanceAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Master data errors
	case errors.Is(err, master.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, master.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, master.ErrJobRoleNotFound):
		NotFound(w, "Job role not found")
	case errors.Is(err, master.ErrSalaryStructureNotFound):
		NotFound(w, "Salary structure not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrUploadNotFound):
		NotFound(w, "Attendance upload not found")
	case errors.Is(err, attendance.ErrUnsupportedFileType):
		BadRequest(w, "Only .csv and .xlsx files are accepted", nil)
	case errors.Is(err, attendance.ErrNoLateRecords):
		NotFound(w, "No late records found for this employee in the given month")
	case errors.Is(err, attendance.ErrSummaryNotFound):
		NotFound(w, "Monthly summary not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrRunAlreadyProcessed):
		Conflict(w, "Payroll for this month has already been processed")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, "Invalid payroll status transition")
	case errors.Is(err, payroll.ErrNoEligibleEmployees):
		BadRequest(w, "No active employees with salary structures found", nil)

	// KPI domain errors
	case errors.Is(err, kpi.ErrTemplateNotFound):
		NotFound(w, "KPI template not found")
	case errors.Is(err, kpi.ErrReviewNotFound):
		NotFound(w, "KPI review not found")
	case errors.Is(err, kpi.ErrSummaryNotFound):
		NotFound(w, "Performance summary not found")
	case errors.Is(err, kpi.ErrTemplateInactive):
		Conflict(w, "KPI template is inactive")
	case errors.Is(err, kpi.ErrWeightsMustSum100),
		errors.Is(err, kpi.ErrScoresIncomplete):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, kpi.ErrReviewPeriodExists):
		Conflict(w, "A review already exists for this employee and period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
