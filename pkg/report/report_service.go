package report

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type ReportService interface {
	Fetch(ctx context.Context, filter Filter) (Report, error)
	UnderAllocated(ctx context.Context, month, group, team string) ([]AllocationRow, error)
	UnderAllocatedCounts(ctx context.Context, month, group, team string) ([]TeamCount, error)
}

type ReportServiceImpl struct {
	repo ReportRepo
}

func NewReportService(repo ReportRepo) *ReportServiceImpl {
	return &ReportServiceImpl{repo}
}

// Fetch runs the billed and unbilled queries concurrently. If either fails
// the whole report fails; a partial result is never returned.
func (s *ReportServiceImpl) Fetch(ctx context.Context, filter Filter) (Report, error) {
	var report Report
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		billed, err := s.repo.Billed(ctx, filter)
		if err != nil {
			return err
		}
		report.Billed = billed
		return nil
	})
	group.Go(func() error {
		unbilled, err := s.repo.Unbilled(ctx, filter)
		if err != nil {
			return err
		}
		report.Unbilled = unbilled
		return nil
	})
	if err := group.Wait(); err != nil {
		return Report{}, err
	}
	return report, nil
}

func (s *ReportServiceImpl) UnderAllocated(ctx context.Context, month, group, team string) ([]AllocationRow, error) {
	return s.repo.UnderAllocated(ctx, month, group, team)
}

func (s *ReportServiceImpl) UnderAllocatedCounts(ctx context.Context, month, group, team string) ([]TeamCount, error) {
	return s.repo.UnderAllocatedCounts(ctx, month, group, team)
}
