package boolexpr

import (
	"fmt"
	"strings"
)

// tokenize splits an already canonicalized expression on parentheses and
// whitespace.
func tokenize(expression string) []string {
	padded := strings.NewReplacer("(", " ( ", ")", " ) ").Replace(expression)
	return strings.Fields(padded)
}

// frame is one entry of the shift-reduce stack: either an operator waiting
// for its operands, or an operand subtree.
type frame struct {
	pending Operator
	node    *Node
}

func (f frame) isOperand() bool {
	return f.node != nil
}

// buildTree runs a single left-to-right scan over the token stream. Grouping
// depth is never tracked explicitly; a closing parenthesis simply triggers one
// reduction of whatever sits on top of the stack.
func buildTree(expression string) (*Node, error) {
	var stack []frame

	for _, token := range tokenize(expression) {
		switch {
		case token == "(":
			// structure is implied by the reductions
		case token == ")":
			stack = reduce(stack)
		default:
			if op, ok := operatorTags[token]; ok {
				stack = append(stack, frame{pending: op})
			} else {
				stack = append(stack, frame{node: &Node{Operator: LITERAL, name: token, text: token}})
			}
		}
	}

	// Treat whatever remains as one final unclosed group. Only binary
	// reductions apply here, and they pop from the top, so unparenthesized
	// chains group to the right: A AND B OR C becomes (A AND (B OR C)).
	for len(stack) >= 3 {
		reduced := reduceBinary(stack)
		if len(reduced) == len(stack) {
			break
		}
		stack = reduced
	}

	for _, f := range stack {
		if f.isOperand() {
			return f.node, nil
		}
	}
	return nil, fmt.Errorf("expression contains no operands")
}

// reduce performs the single reduction triggered by a closing parenthesis.
// Malformed nesting where neither case applies leaves the stack untouched.
func reduce(stack []frame) []frame {
	if reduced := reduceBinary(stack); len(reduced) != len(stack) {
		return reduced
	}
	return reduceUnary(stack)
}

func reduceBinary(stack []frame) []frame {
	if len(stack) < 3 {
		return stack
	}

	right := stack[len(stack)-1]
	op := stack[len(stack)-2]
	left := stack[len(stack)-3]
	if !right.isOperand() || !left.isOperand() || op.isOperand() || !op.pending.binary() {
		return stack
	}

	node := &Node{
		Operator: op.pending,
		Left:     left.node,
		Right:    right.node,
		text:     fmt.Sprintf("(%s %s %s)", left.node.text, op.pending.Tag(), right.node.text),
	}
	return append(stack[:len(stack)-3], frame{node: node})
}

func reduceUnary(stack []frame) []frame {
	if len(stack) < 2 {
		return stack
	}

	operand := stack[len(stack)-1]
	op := stack[len(stack)-2]
	if !operand.isOperand() || op.isOperand() || op.pending != NOT {
		return stack
	}

	node := &Node{
		Operator: NOT,
		Left:     operand.node,
		text:     fmt.Sprintf("NOT(%s)", operand.node.text),
	}
	return append(stack[:len(stack)-2], frame{node: node})
}
