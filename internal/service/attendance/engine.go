package attendance

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/attendance"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/employee"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/master"
)

// Column keyword sets for auto-detection, checked in this order. The first
// matching semantic claims the column; later keywords never override it.
var (
	nameKeywords = []string{"name", "employee", "emp", "userid", "id", "full name"}
	dateKeywords = []string{"date", "day", "attendance date"}
	timeKeywords = []string{"time", "timestamp", "clock"}
	inKeywords   = []string{"in", "checkin", "check-in", "entrance"}
	outKeywords  = []string{"out", "checkout", "check-out", "exit"}
)

var timeLayouts = []string{"15:04:05", "15:04", "3:04 PM", "3:04PM"}

var dateLayouts = []string{"2006-01-02", "02/01/2006", "01/02/2006", "2006/01/02"}

// ColumnMap holds the detected column index per semantic field. -1 means the
// field was not found.
type ColumnMap struct {
	Name int
	Date int
	Time int
	In   int
	Out  int
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "_", " ")
	h = strings.ReplaceAll(h, "-", " ")
	return h
}

func matchesAny(header string, keywords []string) bool {
	for _, kw := range keywords {
		kw = strings.ReplaceAll(kw, "-", " ")
		if strings.Contains(header, kw) {
			return true
		}
	}
	return false
}

// DetectColumns maps spreadsheet headers to semantic fields by keyword.
// Name and date columns are mandatory; either a generic time column or
// explicit in/out columns supply the clock readings.
func DetectColumns(headers []string) (ColumnMap, error) {
	cols := ColumnMap{Name: -1, Date: -1, Time: -1, In: -1, Out: -1}
	found := map[string]string{}

	for i, raw := range headers {
		h := normalizeHeader(raw)
		switch {
		case cols.Name == -1 && matchesAny(h, nameKeywords):
			cols.Name = i
			found["name"] = raw
		case cols.Date == -1 && matchesAny(h, dateKeywords):
			cols.Date = i
			found["date"] = raw
		case cols.In == -1 && matchesAny(h, inKeywords):
			cols.In = i
			found["check_in"] = raw
		case cols.Out == -1 && matchesAny(h, outKeywords):
			cols.Out = i
			found["check_out"] = raw
		case cols.Time == -1 && matchesAny(h, timeKeywords):
			cols.Time = i
			found["time"] = raw
		}
	}

	if cols.Name == -1 || cols.Date == -1 {
		return ColumnMap{}, &attendance.ColumnDetectionError{Found: found}
	}

	return cols, nil
}

// parseClockTime tries each accepted wall-clock layout, returning nil when
// none matches.
func parseClockTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	// Timestamps like "2023-10-02 08:05:00" still carry a usable date prefix
	if fields := strings.Fields(s); len(fields) > 1 {
		return parseDate(fields[0])
	}
	return nil
}

// ClassifyLateness buckets a check-in against the shift start. Missing
// readings are never punished.
func ClassifyLateness(checkIn, shiftStart *time.Time) (int, attendance.LateCategory) {
	if checkIn == nil || shiftStart == nil {
		return 0, attendance.CategoryIgnore
	}

	ci := checkIn.Hour()*60 + checkIn.Minute()
	ss := shiftStart.Hour()*60 + shiftStart.Minute()
	minutes := ci - ss
	if minutes < 0 {
		minutes = 0
	}

	switch {
	case minutes <= 5:
		return minutes, attendance.CategoryIgnore
	case minutes <= 30:
		return minutes, attendance.CategoryLate30
	case minutes <= 60:
		return minutes, attendance.CategoryLate1Hr
	default:
		return minutes, attendance.CategoryQuery
	}
}

// MatchEmployee resolves a raw spreadsheet name against the active employee
// list. Every token of the raw name must appear in the candidate's full name.
// An ambiguous match resolves to the first candidate in list order.
func MatchEmployee(rawName string, employees []employee.Employee) *employee.Employee {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(rawName)))
	if len(tokens) == 0 {
		return nil
	}

	for i := range employees {
		fullName := strings.ToLower(employees[i].FullName)
		all := true
		for _, tok := range tokens {
			if !strings.Contains(fullName, tok) {
				all = false
				break
			}
		}
		if all {
			return &employees[i]
		}
	}

	return nil
}

// WorkingDaysInMonth counts the expected attendance days for a work pattern
// in a YYYY-MM month. The 4-on-4-off rotation is anchored to the 1st of the
// month. An unparseable month falls back to the standard 22 working days.
func WorkingDaysInMonth(month string, pattern master.WorkPattern) int {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return 22
	}

	daysInMonth := start.AddDate(0, 1, -1).Day()
	count := 0
	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(start.Year(), start.Month(), day, 0, 0, 0, 0, time.UTC)
		switch pattern {
		case master.WorkPatternDaily:
			count++
		case master.WorkPatternShift4x4:
			if (day-1)%8 < 4 {
				count++
			}
		default: // MON_FRI and anything unrecognized
			if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
				count++
			}
		}
	}

	return count
}

// Deduction hours charged per late occurrence, by category.
var (
	late30Hours  = decimal.NewFromFloat(0.5)
	late1HrHours = decimal.NewFromInt(1)
	queryHours   = decimal.NewFromInt(2)
)

// LatenessDeduction prices a month's late occurrences at the hourly rate:
// half an hour per LATE_30, one hour per LATE_1HR, two hours per QUERY.
func LatenessDeduction(late30, late1hr, query int, hourlyRate decimal.Decimal) decimal.Decimal {
	hours := late30Hours.Mul(decimal.NewFromInt(int64(late30))).
		Add(late1HrHours.Mul(decimal.NewFromInt(int64(late1hr)))).
		Add(queryHours.Mul(decimal.NewFromInt(int64(query))))
	return hours.Mul(hourlyRate).Round(2)
}

// AbsenceDeduction prices unexcused absent days at the flat per-day rate.
func AbsenceDeduction(absentDays int, dailyRate decimal.Decimal) decimal.Decimal {
	return dailyRate.Mul(decimal.NewFromInt(int64(absentDays))).Round(2)
}

// ParsedRow is one normalized attendance observation before persistence.
type ParsedRow struct {
	RawName  string
	Date     time.Time
	CheckIn  *time.Time
	CheckOut *time.Time
}

// ParseRows normalizes raw spreadsheet rows into one observation per
// (name, date). Sheets carrying both in and out columns take the first row
// of each group directly; otherwise the generic time column is treated as an
// event log, collapsing to min time as check-in and max as check-out. Rows
// without a resolvable name or date are dropped and counted.
func ParseRows(rows [][]string, cols ColumnMap) ([]ParsedRow, int) {
	type key struct {
		name string
		date string
	}

	grouped := map[key]*ParsedRow{}
	var order []key
	dropped := 0
	direct := cols.In >= 0 && cols.Out >= 0

	cell := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	for _, row := range rows {
		rawName := strings.TrimSpace(cell(row, cols.Name))
		date := parseDate(cell(row, cols.Date))
		if rawName == "" || date == nil {
			dropped++
			continue
		}

		k := key{name: strings.ToLower(rawName), date: date.Format("2006-01-02")}
		entry, ok := grouped[k]
		if !ok {
			entry = &ParsedRow{RawName: rawName, Date: *date}
			grouped[k] = entry
			order = append(order, k)
		}

		if direct {
			// First row of the group wins; duplicates are ignored
			if !ok {
				entry.CheckIn = parseClockTime(cell(row, cols.In))
				entry.CheckOut = parseClockTime(cell(row, cols.Out))
			}
			continue
		}

		if t := parseClockTime(cell(row, cols.Time)); t != nil {
			if entry.CheckIn == nil || t.Before(*entry.CheckIn) {
				entry.CheckIn = t
			}
			if entry.CheckOut == nil || t.After(*entry.CheckOut) {
				entry.CheckOut = t
			}
		}
	}

	// Single-observation event logs leave check-out equal to check-in,
	// which says nothing about leaving time
	for _, k := range order {
		e := grouped[k]
		if !direct && e.CheckIn != nil && e.CheckOut != nil && e.CheckIn.Equal(*e.CheckOut) {
			e.CheckOut = nil
		}
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].date != order[j].date {
			return order[i].date < order[j].date
		}
		return order[i].name < order[j].name
	})

	parsed := make([]ParsedRow, 0, len(order))
	for _, k := range order {
		parsed = append(parsed, *grouped[k])
	}

	return parsed, dropped
}
