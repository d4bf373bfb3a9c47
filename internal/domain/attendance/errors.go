package attendance

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUploadNotFound      = errors.New("attendance upload not found")
	ErrUnsupportedFileType = errors.New("unsupported file type: only .csv and .xlsx are accepted")
	ErrNoLateRecords       = errors.New("no late records found for this employee in the given month")
	ErrSummaryNotFound     = errors.New("monthly summary not found")
)

// ColumnDetectionError reports that the required employee-name and/or date
// columns could not be auto-detected, naming whatever columns were found.
type ColumnDetectionError struct {
	Found map[string]string // semantic field -> source header
}

func (e *ColumnDetectionError) Error() string {
	if len(e.Found) == 0 {
		return "could not auto-detect required columns: no recognizable columns found"
	}
	parts := make([]string, 0, len(e.Found))
	for field, header := range e.Found {
		parts = append(parts, field+"="+header)
	}
	sort.Strings(parts)
	return fmt.Sprintf("could not auto-detect required columns, found: %s", strings.Join(parts, ", "))
}
