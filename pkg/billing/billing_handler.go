package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// MCRBillingDTO mirrors the mcrbilling column names used by data-entry clients.
type MCRBillingDTO struct {
	ID            int     `json:"id,omitempty"`
	Month         string  `json:"pmo_month"`
	BMNumber      string  `json:"bmnumber"`
	TaskID        string  `json:"taskid"`
	RGID          string  `json:"rgid"`
	RGD           string  `json:"rgd"`
	WStatus       string  `json:"wstatus"`
	PD            string  `json:"pd"`
	PBU           string  `json:"pbu"`
	Company       string  `json:"company"`
	AssociateName string  `json:"associatename"`
	EmpNo         int     `json:"empno"`
	Hours         float64 `json:"hours"`
	PMO           float64 `json:"pmo"`
	PIF           string  `json:"pif"`
	BillingStatus string  `json:"billingstatus"`
	Remarks       string  `json:"remarks"`
	Username      string  `json:"username,omitempty"`
	Team          string  `json:"cteam,omitempty"`
}

type NonMCRBillingDTO struct {
	ID               int     `json:"id,omitempty"`
	Month            string  `json:"pmo_month"`
	PIF              string  `json:"pif"`
	PONumber         string  `json:"ponumber"`
	ContractNo       string  `json:"contractno"`
	LegalCompany     string  `json:"legalcompany"`
	CustCoordDetails string  `json:"custcoorddetails"`
	EmployeeName     string  `json:"employeename"`
	EmpNo            int     `json:"empno"`
	Onsite           string  `json:"onsite"`
	Hours            float64 `json:"hours"`
	PMO              float64 `json:"pmo"`
	SONumber         string  `json:"sonumber"`
	SDCStatus        string  `json:"sdcstatus"`
	SOStatus         string  `json:"sostatus"`
	SOText           string  `json:"sotext"`
	Remarks          string  `json:"remarks"`
	Username         string  `json:"username,omitempty"`
	Team             string  `json:"cteam,omitempty"`
	Group            string  `json:"cgroup,omitempty"`
}

type BillingHandler struct {
	service BillingService
}

func NewBillingHandler(service BillingService) *BillingHandler {
	return &BillingHandler{service}
}

// SaveMCR accepts a single interactive data-entry row.
func (handler *BillingHandler) SaveMCR(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto struct {
		Month         string  `json:"month"`
		BMNumber      string  `json:"bmNumber"`
		TaskID        string  `json:"taskID"`
		RGID          string  `json:"rgid"`
		RGD           string  `json:"rgd"`
		WStatus       string  `json:"wStatus"`
		PD            string  `json:"pd"`
		PBU           string  `json:"pbu"`
		Company       string  `json:"company"`
		AssociateName string  `json:"associateName"`
		EmpNo         int     `json:"empNumber"`
		Hours         float64 `json:"hours"`
		PMO           float64 `json:"pmo"`
		PIF           string  `json:"pif"`
		BillingStatus string  `json:"billingStatus"`
		Remarks       string  `json:"remarks"`
		Team          string  `json:"cTeam"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record := MCRBilling{
		Month:         dto.Month,
		BMNumber:      dto.BMNumber,
		TaskID:        dto.TaskID,
		RGID:          dto.RGID,
		RGD:           dto.RGD,
		WStatus:       dto.WStatus,
		PD:            dto.PD,
		PBU:           dto.PBU,
		Company:       dto.Company,
		AssociateName: dto.AssociateName,
		EmpNo:         dto.EmpNo,
		Hours:         dto.Hours,
		PMO:           dto.PMO,
		PIF:           dto.PIF,
		BillingStatus: dto.BillingStatus,
		Remarks:       dto.Remarks,
		Team:          dto.Team,
	}
	id, err := handler.service.SaveMCR(r.Context(), record)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]any{"id": id, "message": "Data saved successfully"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// AddMCR accepts the grid-entry shape: a full row plus the selected team.
func (handler *BillingHandler) AddMCR(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto struct {
		RowData       MCRBillingDTO `json:"rowData"`
		GroupSelected string        `json:"groupSelected"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record := dtoToMCR(dto.RowData)
	record.Team = dto.GroupSelected

	id, err := handler.service.SaveMCR(r.Context(), record)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]any{"id": id, "message": "Data added successfully"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *BillingHandler) GetMCRByTeam(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	team := r.URL.Query().Get("team")

	records, err := handler.service.MCRByTeam(r.Context(), team)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]MCRBillingDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, mcrToDTO(record))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// UpdateMCR handles both update shapes: id in the body, or id in the path.
func (handler *BillingHandler) UpdateMCR(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto MCRBillingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if idString, ok := mux.Vars(r)["id"]; ok {
		id, err := strconv.Atoi(idString)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		dto.ID = id
	}
	if dto.ID == 0 {
		http.Error(w, "Invalid billing id in request", http.StatusBadRequest)
		return
	}

	ok, err := handler.service.UpdateMCR(r.Context(), dtoToMCR(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Billing record not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Data updated successfully"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *BillingHandler) DeleteMCR(w http.ResponseWriter, r *http.Request) {
	handler.deleteByID(w, r, handler.service.DeleteMCR)
}

func (handler *BillingHandler) SaveNonMCR(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto struct {
		Month        string  `json:"month"`
		PIF          string  `json:"pifId"`
		PONumber     string  `json:"poNo"`
		ContractNo   string  `json:"contractNo"`
		LegalCompany string  `json:"legalCompany"`
		CustDetails  string  `json:"custDetails"`
		Name         string  `json:"associateName"`
		EmpNo        int     `json:"empNumber"`
		Onsite       string  `json:"onsite"`
		Hours        float64 `json:"hours"`
		PMO          float64 `json:"pmo"`
		SONumber     string  `json:"soNo"`
		SDCStatus    string  `json:"sdcStatus"`
		SOStatus     string  `json:"soStatus"`
		SOText       string  `json:"soText"`
		Remarks      string  `json:"remarks"`
		Team         string  `json:"cTeam"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record := NonMCRBilling{
		Month:            dto.Month,
		PIF:              dto.PIF,
		PONumber:         dto.PONumber,
		ContractNo:       dto.ContractNo,
		LegalCompany:     dto.LegalCompany,
		CustCoordDetails: dto.CustDetails,
		EmployeeName:     dto.Name,
		EmpNo:            dto.EmpNo,
		Onsite:           dto.Onsite,
		Hours:            dto.Hours,
		PMO:              dto.PMO,
		SONumber:         dto.SONumber,
		SDCStatus:        dto.SDCStatus,
		SOStatus:         dto.SOStatus,
		SOText:           dto.SOText,
		Remarks:          dto.Remarks,
		Team:             dto.Team,
	}
	id, err := handler.service.SaveNonMCR(r.Context(), record)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]any{"id": id, "message": "Data saved successfully"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *BillingHandler) AddNonMCR(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto struct {
		RowData       NonMCRBillingDTO `json:"rowData"`
		GroupSelected string           `json:"groupSelected"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record := dtoToNonMCR(dto.RowData)
	record.Team = dto.GroupSelected

	id, err := handler.service.SaveNonMCR(r.Context(), record)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]any{"id": id, "message": "Data added successfully"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *BillingHandler) GetNonMCRByTeam(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	team := r.URL.Query().Get("team")

	records, err := handler.service.NonMCRByTeam(r.Context(), team)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]NonMCRBillingDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, nonMCRToDTO(record))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *BillingHandler) UpdateNonMCR(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto NonMCRBillingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if idString, ok := mux.Vars(r)["id"]; ok {
		id, err := strconv.Atoi(idString)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		dto.ID = id
	}
	if dto.ID == 0 {
		http.Error(w, "Invalid billing id in request", http.StatusBadRequest)
		return
	}

	ok, err := handler.service.UpdateNonMCR(r.Context(), dtoToNonMCR(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Billing record not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Data updated successfully"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *BillingHandler) DeleteNonMCR(w http.ResponseWriter, r *http.Request) {
	handler.deleteByID(w, r, handler.service.DeleteNonMCR)
}

func (handler *BillingHandler) RemainingMCRHours(w http.ResponseWriter, r *http.Request) {
	handler.remainingHours(w, r, handler.service.RemainingMCRHours)
}

func (handler *BillingHandler) RemainingNonMCRHours(w http.ResponseWriter, r *http.Request) {
	handler.remainingHours(w, r, handler.service.RemainingNonMCRHours)
}

func (handler *BillingHandler) AggregateMCRHours(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	aggregates, err := handler.service.AggregateMCRHours(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	type aggregateDTO struct {
		AssociateName string  `json:"associatename"`
		Hours         float64 `json:"hours"`
		Month         string  `json:"pmo_month"`
	}
	dtos := make([]aggregateDTO, 0, len(aggregates))
	for _, a := range aggregates {
		dtos = append(dtos, aggregateDTO{AssociateName: a.AssociateName, Hours: a.Hours, Month: a.Month})
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *BillingHandler) remainingHours(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context, empNo int, month string) (float64, error)) {
	w.Header().Set("Content-Type", "application/json")

	empNo, err := strconv.Atoi(r.URL.Query().Get("empno"))
	if err != nil {
		http.Error(w, "invalid empno", http.StatusBadRequest)
		return
	}
	month := r.URL.Query().Get("pmo_month")
	if month == "" {
		http.Error(w, "pmo_month is required", http.StatusBadRequest)
		return
	}

	remaining, err := fetch(r.Context(), empNo, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]float64{"remainingHours": remaining}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *BillingHandler) deleteByID(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, id int) (bool, error)) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := del(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Billing record not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func mcrToDTO(record MCRBilling) MCRBillingDTO {
	return MCRBillingDTO{
		ID:            record.ID,
		Month:         record.Month,
		BMNumber:      record.BMNumber,
		TaskID:        record.TaskID,
		RGID:          record.RGID,
		RGD:           record.RGD,
		WStatus:       record.WStatus,
		PD:            record.PD,
		PBU:           record.PBU,
		Company:       record.Company,
		AssociateName: record.AssociateName,
		EmpNo:         record.EmpNo,
		Hours:         record.Hours,
		PMO:           record.PMO,
		PIF:           record.PIF,
		BillingStatus: record.BillingStatus,
		Remarks:       record.Remarks,
		Username:      record.Username,
		Team:          record.Team,
	}
}

func dtoToMCR(dto MCRBillingDTO) MCRBilling {
	return MCRBilling{
		ID:            dto.ID,
		Month:         dto.Month,
		BMNumber:      dto.BMNumber,
		TaskID:        dto.TaskID,
		RGID:          dto.RGID,
		RGD:           dto.RGD,
		WStatus:       dto.WStatus,
		PD:            dto.PD,
		PBU:           dto.PBU,
		Company:       dto.Company,
		AssociateName: dto.AssociateName,
		EmpNo:         dto.EmpNo,
		Hours:         dto.Hours,
		PMO:           dto.PMO,
		PIF:           dto.PIF,
		BillingStatus: dto.BillingStatus,
		Remarks:       dto.Remarks,
		Username:      dto.Username,
		Team:          dto.Team,
	}
}

func nonMCRToDTO(record NonMCRBilling) NonMCRBillingDTO {
	return NonMCRBillingDTO{
		ID:               record.ID,
		Month:            record.Month,
		PIF:              record.PIF,
		PONumber:         record.PONumber,
		ContractNo:       record.ContractNo,
		LegalCompany:     record.LegalCompany,
		CustCoordDetails: record.CustCoordDetails,
		EmployeeName:     record.EmployeeName,
		EmpNo:            record.EmpNo,
		Onsite:           record.Onsite,
		Hours:            record.Hours,
		PMO:              record.PMO,
		SONumber:         record.SONumber,
		SDCStatus:        record.SDCStatus,
		SOStatus:         record.SOStatus,
		SOText:           record.SOText,
		Remarks:          record.Remarks,
		Username:         record.Username,
		Team:             record.Team,
		Group:            record.Group,
	}
}

func dtoToNonMCR(dto NonMCRBillingDTO) NonMCRBilling {
	return NonMCRBilling{
		ID:               dto.ID,
		Month:            dto.Month,
		PIF:              dto.PIF,
		PONumber:         dto.PONumber,
		ContractNo:       dto.ContractNo,
		LegalCompany:     dto.LegalCompany,
		CustCoordDetails: dto.CustCoordDetails,
		EmployeeName:     dto.EmployeeName,
		EmpNo:            dto.EmpNo,
		Onsite:           dto.Onsite,
		Hours:            dto.Hours,
		PMO:              dto.PMO,
		SONumber:         dto.SONumber,
		SDCStatus:        dto.SDCStatus,
		SOStatus:         dto.SOStatus,
		SOText:           dto.SOText,
		Remarks:          dto.Remarks,
		Username:         dto.Username,
		Team:             dto.Team,
		Group:            dto.Group,
	}
}
