package report

import "strings"

// billingSource binds a billing table to the type tag reports carry.
type billingSource struct {
	table string
	tag   string
}

var (
	mcrSource    = billingSource{table: "mcrbilling", tag: "MCR"}
	nonMCRSource = billingSource{table: "nonmcrbilling", tag: "Non-MCR"}
)

func (f Filter) sources() []billingSource {
	switch f.Source {
	case SourceMCR:
		return []billingSource{mcrSource}
	case SourceNonMCR:
		return []billingSource{nonMCRSource}
	default:
		return []billingSource{mcrSource, nonMCRSource}
	}
}

type compiledQuery struct {
	sql  string
	args []any
}

// compileBilled emits the summary query: roster joined to billing records,
// hours summed per associate, month, dept and team, tagged with the billing
// type. Absent dimensions leave no trace in the emitted SQL. With Source
// "all" the per-type bodies are unioned under identical predicates.
func compileBilled(f Filter) compiledQuery {
	var q compiledQuery
	var bodies []string
	for _, src := range f.sources() {
		var b strings.Builder
		b.WriteString("SELECT a.employee_name, a.employee_dept, a.employee_team, SUM(m.hours) AS hours, m.pmo_month, '")
		b.WriteString(src.tag)
		b.WriteString("' AS billing_type\n")
		b.WriteString("FROM associates a\n")
		b.WriteString("INNER JOIN " + src.table + " m ON a.employee_id = m.empno")
		var conds []string
		if f.Group != "" {
			conds = append(conds, "a.employee_dept = ?")
			q.args = append(q.args, f.Group)
		}
		if f.Team != "" {
			conds = append(conds, "a.employee_team = ?")
			q.args = append(q.args, f.Team)
		}
		if f.Month != "" {
			conds = append(conds, "m.pmo_month = ?")
			q.args = append(q.args, f.Month)
		}
		if len(conds) > 0 {
			b.WriteString("\nWHERE " + strings.Join(conds, " AND "))
		}
		b.WriteString("\nGROUP BY a.employee_name, m.pmo_month, a.employee_dept, a.employee_team")
		bodies = append(bodies, b.String())
	}
	q.sql = strings.Join(bodies, "\nUNION\n")
	return q
}

// compileUnbilled emits the anti-join: roster rows with no billing record of
// the source type in scope. The month predicate lives inside the join
// condition so that a roster row with billing only in other months still
// surfaces as unbilled; group and team restrict the roster side, mirroring
// the billed query's restriction.
func compileUnbilled(f Filter) compiledQuery {
	var q compiledQuery
	var bodies []string
	for _, src := range f.sources() {
		var b strings.Builder
		b.WriteString("SELECT a.employee_name, a.employee_dept, a.employee_team, m.hours, '")
		b.WriteString(src.tag)
		b.WriteString("' AS billing_type, m.pmo_month\n")
		b.WriteString("FROM associates a\n")
		b.WriteString("LEFT JOIN " + src.table + " m ON a.employee_id = m.empno")
		if f.Month != "" {
			b.WriteString(" AND m.pmo_month = ?")
			q.args = append(q.args, f.Month)
		}
		conds := []string{"m.empno IS NULL"}
		if f.Group != "" {
			conds = append(conds, "a.employee_dept = ?")
			q.args = append(q.args, f.Group)
		}
		if f.Team != "" {
			conds = append(conds, "a.employee_team = ?")
			q.args = append(q.args, f.Team)
		}
		b.WriteString("\nWHERE " + strings.Join(conds, " AND "))
		bodies = append(bodies, b.String())
	}
	q.sql = strings.Join(bodies, "\nUNION\n")
	return q
}
