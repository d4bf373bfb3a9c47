package payroll

import "context"

type PayrollRepository interface {
	CreateRun(ctx context.Context, run Run) (Run, error)
	GetRunByID(ctx context.Context, id string) (Run, error)
	GetRunByMonth(ctx context.Context, month string) (Run, error)
	ListRuns(ctx context.Context) ([]Run, error)
	UpdateRun(ctx context.Context, run Run) (Run, error)

	// DeleteRecordsByRun clears a draft run's records ahead of a rebuild
	DeleteRecordsByRun(ctx context.Context, runID string) error
	BulkInsertRecords(ctx context.Context, records []Record) error
	ListRecordsByRun(ctx context.Context, runID string) ([]Record, error)
}
