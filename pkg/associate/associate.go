package associate

// Associate is one roster row. Billing rows reference it by EmployeeID, not
// by the surrogate ID.
type Associate struct {
	ID             int
	EmployeeName   string
	EmployeeID     int
	EmployeeStatus string
	EmployeeDept   string
	EmployeeTeam   string
}

// Option is the label/value projection used by selection dropdowns.
type Option struct {
	Label string
	Value int
}
