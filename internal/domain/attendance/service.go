package attendance

import "context"

type AttendanceService interface {
	// ProcessUpload parses an uploaded spreadsheet, matches rows to active
	// employees, classifies lateness and persists the resulting logs.
	// On parse failure the created upload record is deleted again.
	ProcessUpload(ctx context.Context, req ProcessUploadRequest) (ProcessUploadResponse, error)

	// ManualEntry upserts a single attendance log keyed by
	// (employee_code, date), reclassifying lateness the same way bulk
	// ingestion does
	ManualEntry(ctx context.Context, req ManualEntryRequest) (LogResponse, error)

	// ProcessMonthly recomputes the monthly summary for every active
	// employee with at least one log in the month, and raises disciplinary
	// actions when thresholds are crossed. Idempotent for summaries,
	// additive for actions.
	ProcessMonthly(ctx context.Context, req ProcessMonthlyRequest) (ProcessMonthlyResponse, error)

	// GenerateQueryLetter renders the disciplinary query letter listing the
	// month's LATE_1HR/QUERY dates
	GenerateQueryLetter(ctx context.Context, req QueryLetterRequest) (QueryLetterResponse, error)

	ListUploads(ctx context.Context) ([]UploadResponse, error)

	// DeleteUpload removes the upload, its stored file and, via cascade, the
	// logs it produced
	DeleteUpload(ctx context.Context, id string) error

	GetMonthlySummary(ctx context.Context, employeeID string, month string) (MonthlySummaryResponse, error)
	ListDisciplinaryActions(ctx context.Context, employeeID string) ([]DisciplinaryActionResponse, error)
}
