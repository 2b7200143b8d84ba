package truthtable

import (
	"errors"
	"fmt"

	"github.com/dmsolve/truthtable/src/boolexpr"
	"github.com/samber/lo"
)

// ErrStepSchemaMismatch is returned when an assignment produces a different
// number of steps than the first one. Evaluating from a parse tree makes this
// structurally impossible, but Build still validates it rather than padding
// rows silently.
var ErrStepSchemaMismatch = errors.New("assignments produced different step counts")

// Row is one line of a truth table: the variable values in Table.Variables
// order, the step values in Table.StepLabels order, and the final value of the
// whole expression.
type Row struct {
	Values []bool
	Steps  []bool
	Final  bool
}

// Table is a fully evaluated truth table. Rows are ordered the way the
// assignments were enumerated; see enumerate.
type Table struct {
	Expression string
	Variables  []string
	StepLabels []string
	Rows       []Row
}

// Build parses the expression once, evaluates it for every assignment of its
// variables, and assembles the table. The column schema is frozen from the
// first assignment. An undefined variable aborts the whole build; no partial
// table is returned. Build performs no I/O.
func Build(expression string) (*Table, error) {
	variables := boolexpr.Variables(expression)

	root, err := boolexpr.New(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression '%s': %w", expression, err)
	}

	table := &Table{
		Expression: expression,
		Variables:  variables,
	}

	for _, assignment := range enumerate(variables) {
		value, steps, err := root.Solve(assignment)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate expression '%s': %w", expression, err)
		}

		if table.Rows == nil {
			// the first assignment freezes the column schema
			table.StepLabels = lo.Map(steps, func(s boolexpr.Step, _ int) string {
				return s.Text
			})
			table.Rows = make([]Row, 0, 1<<len(variables))
		} else if len(steps) != len(table.StepLabels) {
			return nil, fmt.Errorf("%w: expected %d, got %d",
				ErrStepSchemaMismatch, len(table.StepLabels), len(steps))
		}

		table.Rows = append(table.Rows, Row{
			Values: lo.Map(variables, func(name string, _ int) bool { return assignment[name] }),
			Steps:  lo.Map(steps, func(s boolexpr.Step, _ int) bool { return s.Value }),
			Final:  value,
		})
	}

	return table, nil
}

// enumerate returns every assignment over the given variables in the fixed
// table order: the first assignment is all true, the last all false, and the
// first (alphabetically smallest) variable varies slowest. Zero variables
// yield the single empty assignment.
func enumerate(variables []string) []map[string]bool {
	count := 1 << len(variables)
	assignments := make([]map[string]bool, 0, count)

	for i := 0; i < count; i++ {
		assignment := make(map[string]bool, len(variables))
		for j, name := range variables {
			bit := i >> (len(variables) - 1 - j) & 1
			assignment[name] = bit == 0
		}
		assignments = append(assignments, assignment)
	}

	return assignments
}
