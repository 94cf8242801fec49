package billing

import (
	"context"

	"github.com/pmodesk/pmodesk/pkg/auth"
)

type BillingService interface {
	SaveMCR(ctx context.Context, record MCRBilling) (int, error)
	MCRByTeam(ctx context.Context, team string) ([]MCRBilling, error)
	UpdateMCR(ctx context.Context, record MCRBilling) (bool, error)
	DeleteMCR(ctx context.Context, id int) (bool, error)

	SaveNonMCR(ctx context.Context, record NonMCRBilling) (int, error)
	NonMCRByTeam(ctx context.Context, team string) ([]NonMCRBilling, error)
	UpdateNonMCR(ctx context.Context, record NonMCRBilling) (bool, error)
	DeleteNonMCR(ctx context.Context, id int) (bool, error)

	RemainingMCRHours(ctx context.Context, empNo int, month string) (float64, error)
	RemainingNonMCRHours(ctx context.Context, empNo int, month string) (float64, error)
	AggregateMCRHours(ctx context.Context) ([]AggregateRow, error)
}

type BillingServiceImpl struct {
	mcrRepo    MCRRepo
	nonMCRRepo NonMCRRepo
}

func NewBillingService(mcrRepo MCRRepo, nonMCRRepo NonMCRRepo) *BillingServiceImpl {
	return &BillingServiceImpl{mcrRepo: mcrRepo, nonMCRRepo: nonMCRRepo}
}

// SaveMCR records the authenticated caller as the submitting user.
func (s *BillingServiceImpl) SaveMCR(ctx context.Context, record MCRBilling) (int, error) {
	record.Username = auth.SubmittedBy(ctx)
	return s.mcrRepo.Store(ctx, record)
}

func (s *BillingServiceImpl) MCRByTeam(ctx context.Context, team string) ([]MCRBilling, error) {
	return s.mcrRepo.GetByTeam(ctx, team)
}

func (s *BillingServiceImpl) UpdateMCR(ctx context.Context, record MCRBilling) (bool, error) {
	return s.mcrRepo.Update(ctx, record)
}

func (s *BillingServiceImpl) DeleteMCR(ctx context.Context, id int) (bool, error) {
	return s.mcrRepo.Delete(ctx, id)
}

func (s *BillingServiceImpl) SaveNonMCR(ctx context.Context, record NonMCRBilling) (int, error) {
	record.Username = auth.SubmittedBy(ctx)
	return s.nonMCRRepo.Store(ctx, record)
}

func (s *BillingServiceImpl) NonMCRByTeam(ctx context.Context, team string) ([]NonMCRBilling, error) {
	return s.nonMCRRepo.GetByTeam(ctx, team)
}

func (s *BillingServiceImpl) UpdateNonMCR(ctx context.Context, record NonMCRBilling) (bool, error) {
	return s.nonMCRRepo.Update(ctx, record)
}

func (s *BillingServiceImpl) DeleteNonMCR(ctx context.Context, id int) (bool, error) {
	return s.nonMCRRepo.Delete(ctx, id)
}

// RemainingMCRHours computes what is left of the monthly allotment against
// MCR billing only. Non-MCR hours are counted separately, never combined.
func (s *BillingServiceImpl) RemainingMCRHours(ctx context.Context, empNo int, month string) (float64, error) {
	billed, err := s.mcrRepo.SumHours(ctx, empNo, month)
	if err != nil {
		return 0, err
	}
	return RemainingHours(billed), nil
}

func (s *BillingServiceImpl) RemainingNonMCRHours(ctx context.Context, empNo int, month string) (float64, error) {
	billed, err := s.nonMCRRepo.SumHours(ctx, empNo, month)
	if err != nil {
		return 0, err
	}
	return RemainingHours(billed), nil
}

func (s *BillingServiceImpl) AggregateMCRHours(ctx context.Context) ([]AggregateRow, error) {
	return s.mcrRepo.AggregateHours(ctx)
}
