package billing

import "context"

type StubNonMCRRepo struct {
	records map[int]NonMCRBilling
	nextId  int
}

func NewStubNonMCRRepo() *StubNonMCRRepo {
	return &StubNonMCRRepo{records: make(map[int]NonMCRBilling), nextId: 1}
}

func (s *StubNonMCRRepo) Store(ctx context.Context, record NonMCRBilling) (int, error) {
	record.ID = s.nextId
	s.nextId++
	s.records[record.ID] = record
	return record.ID, nil
}

func (s *StubNonMCRRepo) GetByTeam(ctx context.Context, team string) ([]NonMCRBilling, error) {
	var result []NonMCRBilling
	for _, record := range s.records {
		if record.Team == team {
			result = append(result, record)
		}
	}
	return result, nil
}

func (s *StubNonMCRRepo) Update(ctx context.Context, record NonMCRBilling) (bool, error) {
	if _, ok := s.records[record.ID]; !ok {
		return false, nil
	}
	s.records[record.ID] = record
	return true, nil
}

func (s *StubNonMCRRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := s.records[id]; !ok {
		return false, nil
	}
	delete(s.records, id)
	return true, nil
}

func (s *StubNonMCRRepo) SumHours(ctx context.Context, empNo int, month string) (float64, error) {
	var sum float64
	for _, record := range s.records {
		if record.EmpNo == empNo && record.Month == month {
			sum += record.Hours
		}
	}
	return sum, nil
}
