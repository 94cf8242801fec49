package billing

// MonthlyHourCeiling is the standard monthly allotment one associate can be
// billed for, per billing type.
const MonthlyHourCeiling = 156

// MCRBilling is one associate's billed hours against an MCR plan entry for
// one month.
type MCRBilling struct {
	ID            int
	Month         string
	BMNumber      string
	TaskID        string
	RGID          string
	RGD           string
	WStatus       string
	PD            string
	PBU           string
	Company       string
	AssociateName string
	EmpNo         int
	Hours         float64
	PMO           float64
	PIF           string
	BillingStatus string
	Remarks       string
	Username      string
	Team          string
}

// NonMCRBilling is billing not tied to an MCR plan, tracked through
// PO/contract/SO identifiers.
type NonMCRBilling struct {
	ID               int
	Month            string
	PIF              string
	PONumber         string
	ContractNo       string
	LegalCompany     string
	CustCoordDetails string
	EmployeeName     string
	EmpNo            int
	Onsite           string
	Hours            float64
	PMO              float64
	SONumber         string
	SDCStatus        string
	SOStatus         string
	SOText           string
	Remarks          string
	Username         string
	Team             string
	Group            string
}

// AggregateRow is one associate's summed hours for one month.
type AggregateRow struct {
	AssociateName string
	Hours         float64
	Month         string
}

// RemainingHours caps billed hours at the monthly ceiling and never reports
// a negative remainder.
func RemainingHours(billed float64) float64 {
	remaining := MonthlyHourCeiling - billed
	if remaining < 0 {
		return 0
	}
	return remaining
}
