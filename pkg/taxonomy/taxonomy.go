package taxonomy

// GroupTeam maps an organizational group to one of its teams, with the GRM
// owning that team.
type GroupTeam struct {
	ID      int
	Team    string
	Group   string
	GRMName string
}

// GRMInfo is the contact record for a group resource manager, keyed by department.
type GRMInfo struct {
	GRMID int
	Name  string
	Email string
	Dept  string
}
