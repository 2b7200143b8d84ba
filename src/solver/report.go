package solver

import (
	"fmt"
	"strings"
)

// Report collects what happened to every expression handed to the solver
// during one session.
type Report struct {
	Solved []string
	Failed map[string]string
}

// RecordSolved records that an expression was solved successfully.
func (r *Report) RecordSolved(expression string) {
	r.Solved = append(r.Solved, expression)
}

// RecordFailure records that an expression could not be solved.
func (r *Report) RecordFailure(expression string, reason error) {
	if r.Failed == nil {
		r.Failed = make(map[string]string)
	}
	r.Failed[expression] = reason.Error()
}

func (r *Report) HasFailures() bool {
	return len(r.Failed) > 0
}

// Summary returns a short human-readable session summary.
func (r *Report) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Solved %d expression(s)", len(r.Solved))

	if r.HasFailures() {
		fmt.Fprintf(&sb, ", %d failed:", len(r.Failed))
		for expression, reason := range r.Failed {
			fmt.Fprintf(&sb, "\n  %s: %s", expression, reason)
		}
	}

	return sb.String()
}
