package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_ReturnsBothResultSets(t *testing.T) {
	repo := NewStubRepo()
	repo.billed = []BilledRow{{EmployeeName: "John Smith", Hours: 100, Month: "2024-01", BillingType: "MCR"}}
	repo.unbilled = []UnbilledRow{{EmployeeName: "Anu Kaur", BillingType: "MCR"}}
	service := NewReportService(repo)

	result, err := service.Fetch(context.Background(), Filter{Source: SourceMCR})

	require.NoError(t, err)
	assert.Equal(t, repo.billed, result.Billed)
	assert.Equal(t, repo.unbilled, result.Unbilled)
}

func TestFetch_NoPartialResultOnFailure(t *testing.T) {
	queryErr := errors.New("disk I/O error")

	repo := NewStubRepo()
	repo.billed = []BilledRow{{EmployeeName: "John Smith"}}
	repo.unbilledErr = queryErr
	service := NewReportService(repo)

	result, err := service.Fetch(context.Background(), Filter{Source: SourceAll})
	assert.ErrorIs(t, err, queryErr)
	assert.Empty(t, result.Billed)
	assert.Empty(t, result.Unbilled)

	repo = NewStubRepo()
	repo.unbilled = []UnbilledRow{{EmployeeName: "Anu Kaur"}}
	repo.billedErr = queryErr
	service = NewReportService(repo)

	result, err = service.Fetch(context.Background(), Filter{Source: SourceAll})
	assert.ErrorIs(t, err, queryErr)
	assert.Empty(t, result.Billed)
	assert.Empty(t, result.Unbilled)
}
