package plan

import "errors"

var (
	ErrPlanNotFound = errors.New("no plan entry for BM number")
	ErrRGIDNotFound = errors.New("no resource group for description")
)

// Details is the plan header looked up during billing entry.
type Details struct {
	MCRIDStatus         string `json:"mcr_id_status"`
	ProjectDivision     string `json:"project_division"`
	ProjectBusinessUnit string `json:"project_business_unit"`
}

// RGDOption pairs a resource group description with its id for dropdowns.
type RGDOption struct {
	ResourceGroupDescription string `json:"resource_group_description"`
	ResourceGroupID          string `json:"resource_group_id"`
}
