package resourcegroup

// ResourceGroup maps a BM number to the resource group billed against it.
type ResourceGroup struct {
	ID       int
	BMNumber string
	RGID     string
	RGD      string
	Username string
}
