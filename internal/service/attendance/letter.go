package attendance

import (
	"bytes"
	"fmt"
	"text/template"
	"time"
)

const queryLetterText = `{{.CompanyName}}

INTERNAL MEMO - QUERY LETTER

Date: {{.IssuedDate}}
To: {{.EmployeeName}} ({{.EmployeeCode}})

RE: QUERY FOR HABITUAL LATENESS - {{.MonthName}}

Our attendance records indicate that you resumed work late on the following dates in {{.MonthName}}:

{{range .Dates}}  - {{.}}
{{end}}
This conduct contravenes the company's attendance policy. You are required to
respond in writing within 48 hours of receipt of this letter, stating why
disciplinary action should not be taken against you.

Human Resources
{{.CompanyName}}
`

var queryLetterTmpl = template.Must(template.New("query_letter").Parse(queryLetterText))

type queryLetterData struct {
	CompanyName  string
	IssuedDate   string
	EmployeeName string
	EmployeeCode string
	MonthName    string
	Dates        []string
}

// RenderQueryLetter fills the standard lateness query letter for the given
// employee and month. Dates are the offending attendance dates.
func RenderQueryLetter(companyName, employeeName, employeeCode, month string, dates []time.Time, issuedAt time.Time) (string, error) {
	monthName := month
	if t, err := time.Parse("2006-01", month); err == nil {
		monthName = t.Format("January 2006")
	}

	data := queryLetterData{
		CompanyName:  companyName,
		IssuedDate:   issuedAt.Format("2 January 2006"),
		EmployeeName: employeeName,
		EmployeeCode: employeeCode,
		MonthName:    monthName,
		Dates:        make([]string, 0, len(dates)),
	}
	for _, d := range dates {
		data.Dates = append(data.Dates, d.Format("Monday, 2 January 2006"))
	}

	var buf bytes.Buffer
	if err := queryLetterTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render query letter: %w", err)
	}

	return buf.String(), nil
}
