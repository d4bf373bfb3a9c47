package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/attendance"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/employee"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/master"
)

func clock(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", s)
	require.NoError(t, err)
	return &parsed
}

func TestClassifyLateness(t *testing.T) {
	t.Parallel()
	shiftStart := clock(t, "08:00")

	tests := []struct {
		name         string
		checkIn      *time.Time
		shiftStart   *time.Time
		wantMinutes  int
		wantCategory attendance.LateCategory
	}{
		{"nil check-in", nil, shiftStart, 0, attendance.CategoryIgnore},
		{"nil shift start", clock(t, "09:00"), nil, 0, attendance.CategoryIgnore},
		{"early arrival clamps to zero", clock(t, "07:30"), shiftStart, 0, attendance.CategoryIgnore},
		{"exactly on time", clock(t, "08:00"), shiftStart, 0, attendance.CategoryIgnore},
		{"five minutes is still ignored", clock(t, "08:05"), shiftStart, 5, attendance.CategoryIgnore},
		{"six minutes is late", clock(t, "08:06"), shiftStart, 6, attendance.CategoryLate30},
		{"thirty minutes stays in first tier", clock(t, "08:30"), shiftStart, 30, attendance.CategoryLate30},
		{"thirty-one minutes moves up", clock(t, "08:31"), shiftStart, 31, attendance.CategoryLate1Hr},
		{"sixty minutes stays in second tier", clock(t, "09:00"), shiftStart, 60, attendance.CategoryLate1Hr},
		{"sixty-one minutes is a query", clock(t, "09:01"), shiftStart, 61, attendance.CategoryQuery},
		{"three hours late", clock(t, "11:00"), shiftStart, 180, attendance.CategoryQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, category := ClassifyLateness(tt.checkIn, tt.shiftStart)
			assert.Equal(t, tt.wantMinutes, minutes)
			assert.Equal(t, tt.wantCategory, category)
		})
	}
}

func TestDetectColumns(t *testing.T) {
	t.Parallel()

	t.Run("standard biometric export", func(t *testing.T) {
		cols, err := DetectColumns([]string{"Employee Name", "Date", "Check-In", "Check-Out"})
		require.NoError(t, err)
		assert.Equal(t, 0, cols.Name)
		assert.Equal(t, 1, cols.Date)
		assert.Equal(t, 2, cols.In)
		assert.Equal(t, 3, cols.Out)
		assert.Equal(t, -1, cols.Time)
	})

	t.Run("underscore and case variations", func(t *testing.T) {
		cols, err := DetectColumns([]string{"FULL_NAME", "attendance_date", "TIMESTAMP"})
		require.NoError(t, err)
		assert.Equal(t, 0, cols.Name)
		assert.Equal(t, 1, cols.Date)
		assert.Equal(t, 2, cols.Time)
	})

	t.Run("event log with single time column", func(t *testing.T) {
		cols, err := DetectColumns([]string{"UserID", "Day", "Clock"})
		require.NoError(t, err)
		assert.Equal(t, 0, cols.Name)
		assert.Equal(t, 1, cols.Date)
		assert.Equal(t, 2, cols.Time)
	})

	t.Run("missing date column fails", func(t *testing.T) {
		_, err := DetectColumns([]string{"Name", "Check-In", "Check-Out"})
		var detErr *attendance.ColumnDetectionError
		require.True(t, errors.As(err, &detErr))
		assert.Equal(t, "Name", detErr.Found["name"])
	})

	t.Run("nothing recognizable fails", func(t *testing.T) {
		_, err := DetectColumns([]string{"foo", "bar", "baz"})
		var detErr *attendance.ColumnDetectionError
		require.True(t, errors.As(err, &detErr))
		assert.Empty(t, detErr.Found)
	})
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"2023-10-02", "2023-10-02"},
		{"02/10/2023", "2023-10-02"}, // day first
		{"2023/10/02", "2023-10-02"},
		{"2023-10-02 08:05:00", "2023-10-02"},
		{" 2023-10-02 ", "2023-10-02"},
	}
	for _, tt := range tests {
		got := parseDate(tt.input)
		require.NotNil(t, got, "input %q", tt.input)
		assert.Equal(t, tt.want, got.Format("2006-01-02"), "input %q", tt.input)
	}

	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("not a date"))
	assert.Nil(t, parseDate("31-31-2023"))
}

func TestParseClockTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"08:05:30", "08:05"},
		{"08:05", "08:05"},
		{"8:05 AM", "08:05"},
		{"2:30PM", "14:30"},
	}
	for _, tt := range tests {
		got := parseClockTime(tt.input)
		require.NotNil(t, got, "input %q", tt.input)
		assert.Equal(t, tt.want, got.Format("15:04"), "input %q", tt.input)
	}

	assert.Nil(t, parseClockTime(""))
	assert.Nil(t, parseClockTime("morning"))
}

func TestMatchEmployee(t *testing.T) {
	t.Parallel()

	employees := []employee.Employee{
		{ID: "1", FullName: "Adaeze Victoria Okafor"},
		{ID: "2", FullName: "Chinedu Okafor"},
		{ID: "3", FullName: "Emeka Obi"},
	}

	t.Run("unique partial match", func(t *testing.T) {
		got := MatchEmployee("Emeka", employees)
		require.NotNil(t, got)
		assert.Equal(t, "3", got.ID)
	})

	t.Run("all tokens must match", func(t *testing.T) {
		got := MatchEmployee("Chinedu Okafor", employees)
		require.NotNil(t, got)
		assert.Equal(t, "2", got.ID)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := MatchEmployee("ADAEZE okafor", employees)
		require.NotNil(t, got)
		assert.Equal(t, "1", got.ID)
	})

	t.Run("ambiguous name takes first in list order", func(t *testing.T) {
		got := MatchEmployee("Okafor", employees)
		require.NotNil(t, got)
		assert.Equal(t, "1", got.ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, MatchEmployee("Tunde Bakare", employees))
	})

	t.Run("blank name", func(t *testing.T) {
		assert.Nil(t, MatchEmployee("   ", employees))
	})
}

func TestWorkingDaysInMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		month   string
		pattern master.WorkPattern
		want    int
	}{
		{"october 2023 weekdays", "2023-10", master.WorkPatternMonFri, 22},
		{"february 2024 weekdays", "2024-02", master.WorkPatternMonFri, 21},
		{"daily covers whole month", "2023-10", master.WorkPatternDaily, 31},
		{"daily february leap year", "2024-02", master.WorkPatternDaily, 29},
		// 4 on, 4 off anchored to the 1st: days 1-4, 9-12, 17-20, 25-28
		{"shift rotation october", "2023-10", master.WorkPatternShift4x4, 16},
		{"unknown pattern falls back to weekdays", "2023-10", master.WorkPattern("NIGHTS"), 22},
		{"bad month falls back to 22", "not-a-month", master.WorkPatternDaily, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkingDaysInMonth(tt.month, tt.pattern))
		})
	}
}

func TestParseRows(t *testing.T) {
	t.Parallel()

	t.Run("explicit in and out columns", func(t *testing.T) {
		cols := ColumnMap{Name: 0, Date: 1, Time: -1, In: 2, Out: 3}
		rows := [][]string{
			{"Emeka Obi", "2023-10-02", "08:10", "17:00"},
			{"Emeka Obi", "2023-10-03", "07:55", "17:05"},
		}

		parsed, dropped := ParseRows(rows, cols)
		require.Len(t, parsed, 2)
		assert.Equal(t, 0, dropped)
		assert.Equal(t, "08:10", parsed[0].CheckIn.Format("15:04"))
		assert.Equal(t, "17:00", parsed[0].CheckOut.Format("15:04"))
	})

	t.Run("duplicate rows keep the first reading", func(t *testing.T) {
		cols := ColumnMap{Name: 0, Date: 1, Time: -1, In: 2, Out: 3}
		rows := [][]string{
			{"Emeka Obi", "2023-10-02", "09:00", "17:00"},
			{"Emeka Obi", "2023-10-02", "08:00", "18:00"},
		}

		parsed, dropped := ParseRows(rows, cols)
		require.Len(t, parsed, 1)
		assert.Equal(t, 0, dropped)
		assert.Equal(t, "09:00", parsed[0].CheckIn.Format("15:04"))
		assert.Equal(t, "17:00", parsed[0].CheckOut.Format("15:04"))
	})

	t.Run("lone check-in column defers to the time column", func(t *testing.T) {
		cols := ColumnMap{Name: 0, Date: 1, Time: 2, In: 3, Out: -1}
		rows := [][]string{
			{"Emeka Obi", "2023-10-02", "08:10", "09:30"},
			{"Emeka Obi", "2023-10-02", "17:45", ""},
		}

		parsed, _ := ParseRows(rows, cols)
		require.Len(t, parsed, 1)
		assert.Equal(t, "08:10", parsed[0].CheckIn.Format("15:04"))
		assert.Equal(t, "17:45", parsed[0].CheckOut.Format("15:04"))
	})

	t.Run("event log collapses to min and max", func(t *testing.T) {
		cols := ColumnMap{Name: 0, Date: 1, Time: 2, In: -1, Out: -1}
		rows := [][]string{
			{"Emeka Obi", "2023-10-02", "12:01"},
			{"Emeka Obi", "2023-10-02", "08:10"},
			{"Emeka Obi", "2023-10-02", "17:45"},
		}

		parsed, dropped := ParseRows(rows, cols)
		require.Len(t, parsed, 1)
		assert.Equal(t, 0, dropped)
		assert.Equal(t, "08:10", parsed[0].CheckIn.Format("15:04"))
		assert.Equal(t, "17:45", parsed[0].CheckOut.Format("15:04"))
	})

	t.Run("single event leaves check-out unknown", func(t *testing.T) {
		cols := ColumnMap{Name: 0, Date: 1, Time: 2, In: -1, Out: -1}
		rows := [][]string{
			{"Emeka Obi", "2023-10-02", "08:10"},
		}

		parsed, _ := ParseRows(rows, cols)
		require.Len(t, parsed, 1)
		require.NotNil(t, parsed[0].CheckIn)
		assert.Nil(t, parsed[0].CheckOut)
	})

	t.Run("rows without name or date are dropped", func(t *testing.T) {
		cols := ColumnMap{Name: 0, Date: 1, Time: 2, In: -1, Out: -1}
		rows := [][]string{
			{"", "2023-10-02", "08:10"},
			{"Emeka Obi", "junk", "08:10"},
			{"Emeka Obi", "2023-10-02", "08:10"},
			{"Emeka Obi", "2023-10-02"}, // short row still groups, no time
		}

		parsed, dropped := ParseRows(rows, cols)
		assert.Equal(t, 2, dropped)
		require.Len(t, parsed, 1)
	})

	t.Run("output ordered by date then name", func(t *testing.T) {
		cols := ColumnMap{Name: 0, Date: 1, Time: -1, In: 2, Out: -1}
		rows := [][]string{
			{"Zainab", "2023-10-03", "08:00"},
			{"Ahmed", "2023-10-03", "08:00"},
			{"Zainab", "2023-10-02", "08:00"},
		}

		parsed, _ := ParseRows(rows, cols)
		require.Len(t, parsed, 3)
		assert.Equal(t, "Zainab", parsed[0].RawName)
		assert.Equal(t, "2023-10-02", parsed[0].Date.Format("2006-01-02"))
		assert.Equal(t, "Ahmed", parsed[1].RawName)
		assert.Equal(t, "Zainab", parsed[2].RawName)
	})
}

func TestLatenessDeduction(t *testing.T) {
	t.Parallel()

	// 145000 monthly package: hourly = 145000 / 22 / 8
	hourly := decimal.NewFromInt(145000).
		Div(decimal.NewFromInt(22)).
		Div(decimal.NewFromInt(8))

	tests := []struct {
		name    string
		late30  int
		late1hr int
		query   int
		want    string
	}{
		{"no late occurrences", 0, 0, 0, "0"},
		{"one LATE_30 and one LATE_1HR", 1, 1, 0, "1235.8"},
		{"three LATE_30 match one and a half hours", 3, 0, 0, "1235.8"},
		{"queries cost two hours each", 0, 0, 2, "3295.45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LatenessDeduction(tt.late30, tt.late1hr, tt.query, hourly)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAbsenceDeduction(t *testing.T) {
	t.Parallel()

	rate := decimal.NewFromInt(2000)
	assert.Equal(t, "40000", AbsenceDeduction(20, rate).String())
	assert.Equal(t, "0", AbsenceDeduction(0, rate).String())
}

func TestRenderQueryLetter(t *testing.T) {
	t.Parallel()

	d1 := time.Date(2023, 10, 4, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2023, 10, 17, 0, 0, 0, 0, time.UTC)
	issued := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)

	letter, err := RenderQueryLetter("Vemre Aremu Enterprise Limited", "Emeka Obi", "VAE-0007", "2023-10", []time.Time{d1, d2}, issued)
	require.NoError(t, err)

	assert.Contains(t, letter, "Vemre Aremu Enterprise Limited")
	assert.Contains(t, letter, "Emeka Obi (VAE-0007)")
	assert.Contains(t, letter, "October 2023")
	assert.Contains(t, letter, "Wednesday, 4 October 2023")
	assert.Contains(t, letter, "Tuesday, 17 October 2023")
	assert.Contains(t, letter, "48 hours")
}
