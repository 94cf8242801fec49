package app

import (
	"database/sql"
	"time"

	"github.com/pmodesk/pmodesk/internal/config"
	"github.com/pmodesk/pmodesk/pkg/associate"
	"github.com/pmodesk/pmodesk/pkg/auth"
	"github.com/pmodesk/pmodesk/pkg/billing"
	"github.com/pmodesk/pmodesk/pkg/importer"
	"github.com/pmodesk/pmodesk/pkg/plan"
	"github.com/pmodesk/pmodesk/pkg/report"
	"github.com/pmodesk/pmodesk/pkg/resourcegroup"
	"github.com/pmodesk/pmodesk/pkg/session"
	"github.com/pmodesk/pmodesk/pkg/taxonomy"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	TokenManager    *auth.TokenManager
	RevocationStore auth.RevocationStore
	AuthService     auth.Service
	AuthHandler     *auth.Handler

	AssociateRepo    associate.AssociateRepo
	AssociateService associate.AssociateService
	AssociateHandler *associate.AssociateHandler

	TaxonomyRepo    taxonomy.Repository
	TaxonomyService taxonomy.Service
	TaxonomyHandler *taxonomy.Handler

	MCRRepo        billing.MCRRepo
	NonMCRRepo     billing.NonMCRRepo
	BillingService billing.BillingService
	BillingHandler *billing.BillingHandler

	ReportRepo    report.ReportRepo
	ReportService report.ReportService
	ReportHandler *report.ReportHandler

	PlanRepo    plan.PlanRepo
	PlanService plan.PlanService
	PlanHandler *plan.PlanHandler

	ResourceGroupRepo    resourcegroup.ResourceGroupRepo
	ResourceGroupService resourcegroup.ResourceGroupService
	ResourceGroupHandler *resourcegroup.ResourceGroupHandler

	ImportService importer.ImportService
	ImportHandler *importer.ImportHandler

	SessionRepo    session.SessionRepo
	SessionHandler *session.SessionHandler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	tokenTTL, err := time.ParseDuration(cfg.Auth.TokenTTL)
	if err != nil {
		log.WithError(err).Warnf("Invalid auth token TTL %q, using 168h", cfg.Auth.TokenTTL)
		tokenTTL = 168 * time.Hour
	}
	deps.TokenManager = auth.NewTokenManager(cfg.Auth.JWTSecret, tokenTTL)
	deps.RevocationStore = auth.NewMemoryRevocationStore()
	deps.AuthService = auth.NewService(auth.NewRepo(db), deps.TokenManager, deps.RevocationStore, cfg.Auth.BcryptCost)
	deps.AuthHandler = auth.NewHandler(deps.AuthService)

	deps.AssociateRepo = associate.NewAssociateRepo(db)
	deps.AssociateService = associate.NewAssociateService(deps.AssociateRepo)
	deps.AssociateHandler = associate.NewAssociateHandler(deps.AssociateService)

	deps.TaxonomyRepo = taxonomy.NewRepository(db)
	deps.TaxonomyService = taxonomy.NewService(deps.TaxonomyRepo)
	deps.TaxonomyHandler = taxonomy.NewHandler(deps.TaxonomyService)

	deps.MCRRepo = billing.NewMCRRepo(db)
	deps.NonMCRRepo = billing.NewNonMCRRepo(db)
	deps.BillingService = billing.NewBillingService(deps.MCRRepo, deps.NonMCRRepo)
	deps.BillingHandler = billing.NewBillingHandler(deps.BillingService)

	deps.ReportRepo = report.NewReportRepo(db)
	deps.ReportService = report.NewReportService(deps.ReportRepo)
	deps.ReportHandler = report.NewReportHandler(deps.ReportService)

	deps.PlanRepo = plan.NewPlanRepo(db)
	deps.PlanService = plan.NewPlanService(deps.PlanRepo)
	deps.PlanHandler = plan.NewPlanHandler(deps.PlanService)

	deps.ResourceGroupRepo = resourcegroup.NewResourceGroupRepo(db)
	deps.ResourceGroupService = resourcegroup.NewResourceGroupService(deps.ResourceGroupRepo)
	deps.ResourceGroupHandler = resourcegroup.NewResourceGroupHandler(deps.ResourceGroupService)

	deps.ImportService = importer.NewImportService(deps.PlanRepo)
	deps.ImportHandler = importer.NewImportHandler(deps.ImportService, cfg.Upload.MaxSize)

	deps.SessionRepo = session.NewSessionRepo(db)
	deps.SessionHandler = session.NewSessionHandler(deps.SessionRepo)

	return deps
}
