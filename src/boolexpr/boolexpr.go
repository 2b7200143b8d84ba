package boolexpr

import (
	"fmt"

	"github.com/dmsolve/truthtable/src/lexicon"
)

type Operator int

const (
	LITERAL Operator = iota
	NOT
	AND
	OR
	IMPLIES
	EQUIV
	XOR
)

var operatorTags = map[string]Operator{
	lexicon.And:     AND,
	lexicon.Or:      OR,
	lexicon.Implies: IMPLIES,
	lexicon.Not:     NOT,
	lexicon.Equiv:   EQUIV,
	lexicon.Xor:     XOR,
}

// Tag returns the canonical tag for the operator, e.g. "AND". LITERAL has no
// tag.
func (o Operator) Tag() string {
	switch o {
	case NOT:
		return lexicon.Not
	case AND:
		return lexicon.And
	case OR:
		return lexicon.Or
	case IMPLIES:
		return lexicon.Implies
	case EQUIV:
		return lexicon.Equiv
	case XOR:
		return lexicon.Xor
	}
	return ""
}

func (o Operator) binary() bool {
	switch o {
	case AND, OR, IMPLIES, EQUIV, XOR:
		return true
	}
	return false
}

// Node is one node of a solvable expression tree. Leaves are LITERAL nodes
// holding a variable name; NOT nodes only use Left.
type Node struct {
	Operator Operator
	Left     *Node
	Right    *Node

	name string // variable name, LITERAL only
	text string // display form, composed while parsing
}

// New creates a solvable expression tree from an expression using localized
// operator phrases over single-letter variables.
// Example usage:
//
//	tree, err := boolexpr.New("(A конъюнкция B)")
//	if err != nil {
//		log.Fatalf("failed to create expression tree: %v", err)
//	}
//	value, steps, err := tree.Solve(map[string]bool{"A": true, "B": false})
func New(expression string) (*Node, error) {
	root, err := buildTree(lexicon.Canonicalize(expression))
	if err != nil {
		return nil, fmt.Errorf("failed to build expression tree for '%s': %w", expression, err)
	}
	return root, nil
}

// DisplayText returns the canonical display form of the sub-expression
// rooted at n, e.g. "((A AND B) OR NOT(C))".
func (n *Node) DisplayText() string {
	return n.text
}
