package payroll

import "context"

type PayrollService interface {
	// ProcessMonth builds (or rebuilds, while still DRAFT) the payroll run
	// for the month from salary structures and attendance summaries.
	// A run that has moved past DRAFT can no longer be reprocessed.
	ProcessMonth(ctx context.Context, req ProcessMonthRequest, processedBy string) (ProcessMonthResponse, error)

	// UpdateStatus advances the run through its lifecycle. Transitions are
	// forward-only and approval stamps the approving user.
	UpdateStatus(ctx context.Context, runID string, req UpdateStatusRequest, actorID string) (RunResponse, error)

	ListRuns(ctx context.Context) ([]RunResponse, error)
	GetRun(ctx context.Context, runID string) (RunDetailResponse, error)

	// ExportCSV renders a run's records as CSV for download
	ExportCSV(ctx context.Context, runID string) ([]byte, string, error)
}
