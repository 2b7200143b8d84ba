package boolexpr

import (
	"fmt"
)

// Step records one reduction performed while solving: the sub-expression that
// was reduced and the value it produced. Steps are appended in the order the
// reductions complete, so for a fixed tree the number and text of the steps is
// the same for every assignment; only the values differ.
type Step struct {
	Text  string
	Value bool
}

// Solve evaluates the tree under the given assignment and returns the final
// value together with every intermediate step. Referencing a variable the
// assignment does not cover fails with an UndefinedVariableError, possibly
// wrapped; use errors.As to extract it.
func (n *Node) Solve(assignment map[string]bool) (bool, []Step, error) {
	var steps []Step
	value, err := n.solve(assignment, &steps)
	if err != nil {
		return false, nil, err
	}
	return value, steps, nil
}

func (n *Node) solve(assignment map[string]bool, steps *[]Step) (bool, error) {
	switch n.Operator {
	case LITERAL:
		value, ok := assignment[n.name]
		if !ok {
			return false, NewUndefinedVariableError(n.name)
		}
		return value, nil

	case NOT:
		operand, err := n.Left.solve(assignment, steps)
		if err != nil {
			return false, fmt.Errorf("failed solving NOT sub-expression: %w", err)
		}
		result := !operand
		*steps = append(*steps, Step{Text: n.text, Value: result})
		return result, nil
	}

	left, err := n.Left.solve(assignment, steps)
	if err != nil {
		return false, fmt.Errorf("failed solving left sub-expression: %w", err)
	}
	right, err := n.Right.solve(assignment, steps)
	if err != nil {
		return false, fmt.Errorf("failed solving right sub-expression: %w", err)
	}

	var result bool
	switch n.Operator {
	case AND:
		result = left && right
	case OR:
		result = left || right
	case IMPLIES:
		result = !left || right
	case EQUIV:
		result = left == right
	case XOR:
		result = left != right
	default:
		return false, fmt.Errorf("unknown operator: %v", n.Operator)
	}

	*steps = append(*steps, Step{Text: n.text, Value: result})
	return result, nil
}
