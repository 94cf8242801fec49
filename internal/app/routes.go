package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Auth
	r.HandleFunc("/api/register", deps.AuthHandler.Register).Methods("POST")
	r.HandleFunc("/api/adminLogin", deps.AuthHandler.AdminLogin).Methods("POST")
	r.HandleFunc("/api/userLogin", deps.AuthHandler.UserLogin).Methods("POST")
	r.HandleFunc("/api/logout", deps.AuthHandler.Logout).Methods("POST")
	r.HandleFunc("/api/protectedRoute", deps.AuthHandler.ProtectedRoute).Methods("GET")

	// Spreadsheet import
	r.HandleFunc("/api/mcrupload", deps.ImportHandler.UploadMCRPlan).Methods("POST")
	r.HandleFunc("/api/planiswareupload", deps.ImportHandler.UploadPlanisware).Methods("POST")

	// Groups, teams and GRM contacts
	r.HandleFunc("/api/group", deps.TaxonomyHandler.Groups).Methods("GET")
	r.HandleFunc("/api/allTeam", deps.TaxonomyHandler.AllTeams).Methods("GET")
	r.HandleFunc("/api/team", deps.TaxonomyHandler.TeamsByGroup).Methods("GET")
	r.HandleFunc("/api/addGroupTeam", deps.TaxonomyHandler.AddGroupTeam).Methods("POST")
	r.HandleFunc("/api/fetchGrmData", deps.TaxonomyHandler.GetGRMs).Methods("GET")
	r.HandleFunc("/api/saveGrmData", deps.TaxonomyHandler.SaveGRM).Methods("POST")
	r.HandleFunc("/api/updateGrmInfo/{grmid}", deps.TaxonomyHandler.UpdateGRM).Methods("PUT")
	r.HandleFunc("/api/deleteGrm/{grmid}", deps.TaxonomyHandler.DeleteGRM).Methods("DELETE")
	r.HandleFunc("/api/getGrmDetails", deps.TaxonomyHandler.GRMDetails).Methods("GET")

	// Billed/unbilled reports; every variant routes into the same engine
	r.HandleFunc("/api/fetchAllStatus", deps.ReportHandler.Fetch).Methods("GET")
	r.HandleFunc("/api/fetchAllButMonth", deps.ReportHandler.Fetch).Methods("GET")
	r.HandleFunc("/api/fetchAllButTeam", deps.ReportHandler.Fetch).Methods("GET")
	r.HandleFunc("/api/fetchAllButGroup", deps.ReportHandler.Fetch).Methods("GET")
	r.HandleFunc("/api/fetchAllButGT", deps.ReportHandler.Fetch).Methods("GET")
	r.HandleFunc("/api/fetchAllButGM", deps.ReportHandler.Fetch).Methods("GET")
	r.HandleFunc("/api/fetchAllButTM", deps.ReportHandler.Fetch).Methods("GET")
	r.HandleFunc("/api/fetchAllButGTM", deps.ReportHandler.Fetch).Methods("GET")

	// Under-allocation views
	r.HandleFunc("/api/verifyplanisware", deps.ReportHandler.UnderAllocated).Methods("GET")
	r.HandleFunc("/api/notallocated", deps.ReportHandler.UnderAllocatedCounts).Methods("GET")
	r.HandleFunc("/api/fetchallteams", deps.ReportHandler.UnderAllocatedAllTeams).Methods("GET")
	r.HandleFunc("/api/fetchnotallocated", deps.ReportHandler.UnderAllocatedCountsAllTeams).Methods("GET")

	// Associate roster
	r.HandleFunc("/api/addAssociates", deps.AssociateHandler.AddAll).Methods("POST")
	r.HandleFunc("/api/getAssociateData", deps.AssociateHandler.GetByTeam).Methods("GET")
	r.HandleFunc("/api/deptAssociates", deps.AssociateHandler.Options).Methods("GET")
	r.HandleFunc("/api/updateAssociates/{id}", deps.AssociateHandler.Update).Methods("PUT")
	r.HandleFunc("/api/deleteAssociates/{id}", deps.AssociateHandler.Delete).Methods("DELETE")

	// MCR billing
	r.HandleFunc("/api/savebillingdata", deps.BillingHandler.SaveMCR).Methods("POST")
	r.HandleFunc("/api/addmcrbilling1", deps.BillingHandler.AddMCR).Methods("POST")
	r.HandleFunc("/api/fetchmcrbilling", deps.BillingHandler.GetMCRByTeam).Methods("GET")
	r.HandleFunc("/api/updatemcrbilling", deps.BillingHandler.UpdateMCR).Methods("PUT")
	r.HandleFunc("/api/updatemcrbilling1/{id}", deps.BillingHandler.UpdateMCR).Methods("PUT")
	r.HandleFunc("/api/deleteMcrData/{id}", deps.BillingHandler.DeleteMCR).Methods("DELETE")
	r.HandleFunc("/api/deletemcrbilling1/{id}", deps.BillingHandler.DeleteMCR).Methods("DELETE")

	// Non-MCR billing
	r.HandleFunc("/api/saveNonMcrData", deps.BillingHandler.SaveNonMCR).Methods("POST")
	r.HandleFunc("/api/addnonmcrbilling1", deps.BillingHandler.AddNonMCR).Methods("POST")
	r.HandleFunc("/api/fetchNonMcrData", deps.BillingHandler.GetNonMCRByTeam).Methods("GET")
	r.HandleFunc("/api/updateNonMcrBilling/{id}", deps.BillingHandler.UpdateNonMCR).Methods("PUT")
	r.HandleFunc("/api/updatenonmcrbilling1/{id}", deps.BillingHandler.UpdateNonMCR).Methods("PUT")
	r.HandleFunc("/api/deleteNonMcrData/{id}", deps.BillingHandler.DeleteNonMCR).Methods("DELETE")
	r.HandleFunc("/api/deletenonmcrbilling1/{id}", deps.BillingHandler.DeleteNonMCR).Methods("DELETE")

	// Hour ceilings and rollups
	r.HandleFunc("/api/remainingHours", deps.BillingHandler.RemainingMCRHours).Methods("GET")
	r.HandleFunc("/api/remainingNonMcrHours", deps.BillingHandler.RemainingNonMCRHours).Methods("GET")
	r.HandleFunc("/api/getAggregateHrs", deps.BillingHandler.AggregateMCRHours).Methods("GET")

	// Resource groups
	r.HandleFunc("/api/fetchBmResourceGroup", deps.ResourceGroupHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/saveResourceGroup", deps.ResourceGroupHandler.Save).Methods("POST")
	r.HandleFunc("/api/updateResourceGroup/{id}", deps.ResourceGroupHandler.Update).Methods("PUT")
	r.HandleFunc("/api/deleteResourceGroup/{id}", deps.ResourceGroupHandler.Delete).Methods("DELETE")

	// Plan lookups
	r.HandleFunc("/api/detailsByBmNumber", deps.PlanHandler.DetailsByBMNumber).Methods("GET")
	r.HandleFunc("/api/rgdOptions", deps.PlanHandler.RGDOptions).Methods("GET")
	r.HandleFunc("/api/rgidByRgd", deps.PlanHandler.RGIDByRGD).Methods("GET")

	// Session blob cache
	r.HandleFunc("/api/session", deps.SessionHandler.Save).Methods("POST")
	r.HandleFunc("/api/session/{token}", deps.SessionHandler.Get).Methods("GET")
	r.HandleFunc("/api/session/{token}", deps.SessionHandler.Delete).Methods("DELETE")
}
