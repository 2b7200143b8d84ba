package boolexpr

import (
	"fmt"
)

// UndefinedVariableError is returned when an expression references a variable
// the assignment does not cover.
type UndefinedVariableError struct {
	VariableName string
}

// NewUndefinedVariableError creates a new UndefinedVariableError with the given variable name.
func NewUndefinedVariableError(variableName string) error {
	return &UndefinedVariableError{VariableName: variableName}
}

func (e UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: %s", e.VariableName)
}
