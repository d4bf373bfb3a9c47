package attendance

import "context"

type AttendanceRepository interface {
	// Uploads
	CreateUpload(ctx context.Context, u Upload) (Upload, error)
	GetUpload(ctx context.Context, id string) (Upload, error)
	DeleteUpload(ctx context.Context, id string) error
	ListUploads(ctx context.Context) ([]Upload, error)

	// Logs
	BulkInsertLogs(ctx context.Context, logs []Log) (int, error)

	// UpsertLog inserts or replaces the log keyed by (employee_code, date);
	// used by manual single-entry correction
	UpsertLog(ctx context.Context, log Log) (Log, bool, error)

	// ListLogsByEmployeeMonth returns every log for the employee code whose
	// date falls in the YYYY-MM month, ordered by date
	ListLogsByEmployeeMonth(ctx context.Context, employeeCode string, month string) ([]Log, error)

	// ListLateLogs returns the employee's logs in the month whose category is
	// one of the given ones, ordered by date; feeds query-letter generation
	ListLateLogs(ctx context.Context, employeeCode string, month string, categories []LateCategory) ([]Log, error)

	// EmployeeCodesWithLogs returns the distinct employee codes having at
	// least one log in the month, optionally filtered by branch
	EmployeeCodesWithLogs(ctx context.Context, month string, branchID *string) ([]string, error)

	// Monthly summaries
	UpsertMonthlySummary(ctx context.Context, s MonthlySummary) (MonthlySummary, error)
	GetMonthlySummary(ctx context.Context, employeeID string, month string) (MonthlySummary, error)

	// GetOrCreateDisciplinaryAction creates the action unless one already
	// exists for (employee, month, action_type); reports whether it created
	GetOrCreateDisciplinaryAction(ctx context.Context, a DisciplinaryAction) (DisciplinaryAction, bool, error)
	ListDisciplinaryActions(ctx context.Context, employeeID string) ([]DisciplinaryAction, error)
}
