package importer

// mcrPlanMapping translates MCR plan export headers to mcrplan columns.
// Headers outside this table are ignored.
var mcrPlanMapping = map[string]string{
	"MCR ID":                      "mcr_id",
	"Task ID":                     "task_id",
	"Resource Group ID":           "resource_group_id",
	"MCR ID Description":          "mcr_id_description",
	"MCR ID Status":               "mcr_id_status",
	"Project Division":            "project_division",
	"Project Business Unit":       "project_business_unit",
	"Time Record On Task":         "time_record_on_task",
	"Classification Time Record":  "classification_time_record",
	"Task Description":            "task_description",
	"Resource Group Description":  "resource_group_description",
	"Cost Center":                 "cost_center",
	"Activity Type":               "activity_type",
	"Planned Efforts":             "planned_efforts",
	"Unit Of Measure":             "unit_of_measure",
	"Planned Cost":                "planned_cost",
	"Currency":                    "currency",
	"Record Date":                 "record_date",
	"Cost Element":                "cost_element",
	"Cost Element Description":    "cost_element_description",
	"Plan ID":                     "plan_id",
	"Plan ID Description":         "plan_id_description",
	"Ignore All Flag":             "ignore_all_flag",
	"Multi Usage Flag":            "multi_usage_flag",
	"Resource Type":               "resource_type",
	"Time Record On RQMS No":      "time_record_on_rqms_no",
	"Task Start Date":             "task_start_date",
	"Task End Date":               "task_end_date",
	"Legal Owners Company Code":   "legal_owners_company_code",
	"MCR Start Date":              "mcr_start_date",
	"MCR End Date":                "mcr_end_date",
	"Prime Start Date":            "prime_start_date",
	"Prime End Date":              "prime_end_date",
	"Resource Group Company Code": "resource_group_company_code",
}

// planiswareMapping translates Planisware export headers to planisware columns.
var planiswareMapping = map[string]string{
	"Project ID":     "project_id",
	"Project Name":   "project_name",
	"Task ID":        "task_id",
	"Task Name":      "task_name",
	"Resource ID":    "resource_id",
	"Resource Name":  "resource_name",
	"Allocation":     "allocation",
	"Planned Effort": "planned_effort",
	"Actual Effort":  "actual_effort",
	"Start Date":     "start_date",
	"End Date":       "end_date",
	"Task Status":    "task_status",
	"Business Unit":  "business_unit",
	"Division":       "division",
}

// Numeric values on these columns are magnitudes, never date serials.
var serialExemptColumns = map[string]bool{
	"planned_cost":    true,
	"planned_efforts": true,
}
