package plan

import "context"

type PlanService interface {
	DetailsByBMNumber(ctx context.Context, bmNumber string) (Details, error)
	RGDOptions(ctx context.Context, bmNumber string) ([]RGDOption, error)
	RGIDByRGD(ctx context.Context, rgd string) (string, error)
}

type PlanServiceImpl struct {
	repo PlanRepo
}

func NewPlanService(repo PlanRepo) *PlanServiceImpl {
	return &PlanServiceImpl{repo}
}

func (s *PlanServiceImpl) DetailsByBMNumber(ctx context.Context, bmNumber string) (Details, error) {
	return s.repo.DetailsByBMNumber(ctx, bmNumber)
}

func (s *PlanServiceImpl) RGDOptions(ctx context.Context, bmNumber string) ([]RGDOption, error) {
	return s.repo.RGDOptions(ctx, bmNumber)
}

func (s *PlanServiceImpl) RGIDByRGD(ctx context.Context, rgd string) (string, error) {
	return s.repo.RGIDByRGD(ctx, rgd)
}
