package report

import "context"

type StubRepo struct {
	billed      []BilledRow
	unbilled    []UnbilledRow
	billedErr   error
	unbilledErr error
}

func NewStubRepo() *StubRepo {
	return &StubRepo{}
}

func (s *StubRepo) Billed(ctx context.Context, filter Filter) ([]BilledRow, error) {
	if s.billedErr != nil {
		return nil, s.billedErr
	}
	return s.billed, nil
}

func (s *StubRepo) Unbilled(ctx context.Context, filter Filter) ([]UnbilledRow, error) {
	if s.unbilledErr != nil {
		return nil, s.unbilledErr
	}
	return s.unbilled, nil
}

func (s *StubRepo) UnderAllocated(ctx context.Context, month, group, team string) ([]AllocationRow, error) {
	return nil, nil
}

func (s *StubRepo) UnderAllocatedCounts(ctx context.Context, month, group, team string) ([]TeamCount, error) {
	return nil, nil
}
