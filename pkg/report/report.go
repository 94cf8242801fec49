package report

import "errors"

var ErrUnknownSource = errors.New("unknown billing source")

// Source selects which billing tables feed a report.
type Source string

const (
	SourceAll    Source = "all"
	SourceMCR    Source = "mcr"
	SourceNonMCR Source = "nonmcr"
)

func ParseSource(value string) (Source, error) {
	switch Source(value) {
	case SourceAll, SourceMCR, SourceNonMCR:
		return Source(value), nil
	}
	return "", ErrUnknownSource
}

// Filter narrows a report. An empty dimension is omitted from the compiled
// query entirely, not defaulted to a wildcard.
type Filter struct {
	Group  string
	Team   string
	Month  string
	Source Source
}

// BilledRow is one summary line: total hours per associate, month and type.
type BilledRow struct {
	EmployeeName string  `json:"employee_name"`
	EmployeeDept string  `json:"employee_dept"`
	EmployeeTeam string  `json:"employee_team"`
	Hours        float64 `json:"hours"`
	Month        string  `json:"pmo_month"`
	BillingType  string  `json:"billing_type"`
}

// UnbilledRow is a roster entry with no billing record of the requested type
// in scope. The billing-side columns are null by construction.
type UnbilledRow struct {
	EmployeeName string   `json:"employee_name"`
	EmployeeDept string   `json:"employee_dept"`
	EmployeeTeam string   `json:"employee_team"`
	Hours        *float64 `json:"hours"`
	BillingType  string   `json:"billing_type"`
	Month        *string  `json:"pmo_month"`
}

// Report pairs the billed summary with the unbilled set.
type Report struct {
	Billed   []BilledRow
	Unbilled []UnbilledRow
}

// AllocationRow is one line of the under-allocation view: roster entries with
// no non-MCR record for the month, plus non-MCR entries allocated below 1.0.
type AllocationRow struct {
	EmployeeName string   `json:"employee_name"`
	EmployeeTeam string   `json:"employee_team"`
	PMO          *float64 `json:"pmo"`
}

// TeamCount is a per-team rollup of under-allocated associates.
type TeamCount struct {
	EmployeeTeam string `json:"employee_team"`
	Count        int    `json:"Count"`
}
