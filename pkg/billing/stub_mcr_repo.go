package billing

import "context"

type StubMCRRepo struct {
	records map[int]MCRBilling
	nextId  int
}

func NewStubMCRRepo() *StubMCRRepo {
	return &StubMCRRepo{records: make(map[int]MCRBilling), nextId: 1}
}

func (s *StubMCRRepo) Store(ctx context.Context, record MCRBilling) (int, error) {
	record.ID = s.nextId
	s.nextId++
	s.records[record.ID] = record
	return record.ID, nil
}

func (s *StubMCRRepo) GetByTeam(ctx context.Context, team string) ([]MCRBilling, error) {
	var result []MCRBilling
	for _, record := range s.records {
		if record.Team == team {
			result = append(result, record)
		}
	}
	return result, nil
}

func (s *StubMCRRepo) Update(ctx context.Context, record MCRBilling) (bool, error) {
	if _, ok := s.records[record.ID]; !ok {
		return false, nil
	}
	s.records[record.ID] = record
	return true, nil
}

func (s *StubMCRRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := s.records[id]; !ok {
		return false, nil
	}
	delete(s.records, id)
	return true, nil
}

func (s *StubMCRRepo) SumHours(ctx context.Context, empNo int, month string) (float64, error) {
	var sum float64
	for _, record := range s.records {
		if record.EmpNo == empNo && record.Month == month {
			sum += record.Hours
		}
	}
	return sum, nil
}

func (s *StubMCRRepo) AggregateHours(ctx context.Context) ([]AggregateRow, error) {
	totals := make(map[string]*AggregateRow)
	var order []string
	for _, record := range s.records {
		key := record.AssociateName + "|" + record.Month
		if row, ok := totals[key]; ok {
			row.Hours += record.Hours
			continue
		}
		totals[key] = &AggregateRow{AssociateName: record.AssociateName, Hours: record.Hours, Month: record.Month}
		order = append(order, key)
	}
	result := make([]AggregateRow, 0, len(order))
	for _, key := range order {
		result = append(result, *totals[key])
	}
	return result, nil
}
