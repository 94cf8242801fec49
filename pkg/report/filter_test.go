package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileBilled_OmitsAbsentDimensions(t *testing.T) {
	q := compileBilled(Filter{Source: SourceMCR})

	assert.NotContains(t, q.sql, "WHERE")
	assert.Contains(t, q.sql, "INNER JOIN mcrbilling")
	assert.Contains(t, q.sql, "'MCR' AS billing_type")
	assert.NotContains(t, q.sql, "nonmcrbilling")
	assert.Empty(t, q.args)
}

func TestCompileBilled_AllDimensionsPresent(t *testing.T) {
	q := compileBilled(Filter{Group: "Engineering", Team: "Platform", Month: "2024-03", Source: SourceNonMCR})

	assert.Contains(t, q.sql, "WHERE a.employee_dept = ? AND a.employee_team = ? AND m.pmo_month = ?")
	assert.Contains(t, q.sql, "INNER JOIN nonmcrbilling")
	assert.Contains(t, q.sql, "'Non-MCR' AS billing_type")
	assert.Equal(t, []any{"Engineering", "Platform", "2024-03"}, q.args)
}

func TestCompileBilled_AllSourcesUnionUnderIdenticalPredicates(t *testing.T) {
	q := compileBilled(Filter{Month: "2024-03", Source: SourceAll})

	parts := strings.Split(q.sql, "\nUNION\n")
	assert.Len(t, parts, 2)
	assert.Contains(t, parts[0], "mcrbilling")
	assert.Contains(t, parts[1], "nonmcrbilling")
	assert.Contains(t, parts[0], "WHERE m.pmo_month = ?")
	assert.Contains(t, parts[1], "WHERE m.pmo_month = ?")
	assert.Equal(t, []any{"2024-03", "2024-03"}, q.args)
}

func TestCompileUnbilled_MonthPredicateInsideJoin(t *testing.T) {
	q := compileUnbilled(Filter{Month: "2024-03", Source: SourceMCR})

	assert.Contains(t, q.sql, "ON a.employee_id = m.empno AND m.pmo_month = ?")
	assert.Contains(t, q.sql, "WHERE m.empno IS NULL")
	assert.NotContains(t, q.sql, "WHERE m.empno IS NULL AND m.pmo_month")
	assert.Equal(t, []any{"2024-03"}, q.args)
}

func TestCompileUnbilled_GroupAndTeamRestrictRoster(t *testing.T) {
	q := compileUnbilled(Filter{Group: "Engineering", Team: "Platform", Source: SourceNonMCR})

	assert.Contains(t, q.sql, "WHERE m.empno IS NULL AND a.employee_dept = ? AND a.employee_team = ?")
	assert.Equal(t, []any{"Engineering", "Platform"}, q.args)
}

func TestParseSource(t *testing.T) {
	for _, value := range []string{"all", "mcr", "nonmcr"} {
		source, err := ParseSource(value)
		assert.NoError(t, err)
		assert.Equal(t, Source(value), source)
	}

	_, err := ParseSource("everything")
	assert.ErrorIs(t, err, ErrUnknownSource)
	_, err = ParseSource("")
	assert.ErrorIs(t, err, ErrUnknownSource)
}
