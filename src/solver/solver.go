package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmsolve/truthtable/src/boolexpr"
	"github.com/dmsolve/truthtable/src/truthtable"
)

// Explainer produces a natural-language explanation for a solved expression.
type Explainer interface {
	Explain(expression, table, steps string) (string, error)
}

// Solver turns one expression into a complete result document: truth table,
// step legend and, when an Explainer is configured, an explanation. It also
// keeps a session report of everything it was asked to solve.
type Solver struct {
	explainer  Explainer // nil disables explanations
	resultFile string    // empty disables the result file
	csvFile    string    // empty disables the CSV export

	report Report
}

func New(explainer Explainer, resultFile, csvFile string) *Solver {
	return &Solver{
		explainer:  explainer,
		resultFile: resultFile,
		csvFile:    csvFile,
	}
}

// Result is everything produced for one expression. Document is the full
// text written to the result file.
type Result struct {
	Expression  string
	Table       *truthtable.Table
	Explanation string
	Document    string
}

func (s *Solver) Solve(expression string) (*Result, error) {
	table, err := truthtable.Build(expression)
	if err != nil {
		s.report.RecordFailure(expression, err)

		var undefinedVar *boolexpr.UndefinedVariableError
		if errors.As(err, &undefinedVar) {
			return nil, fmt.Errorf("expression '%s' references the undefined variable %s",
				expression, undefinedVar.VariableName)
		}
		return nil, fmt.Errorf("failed to solve expression '%s': %w", expression, err)
	}

	rendered := table.RenderString()
	legend := table.StepLegend()

	result := &Result{
		Expression: expression,
		Table:      table,
		Document:   fmt.Sprintf("Expression: %s\n\n%s\n%s", expression, rendered, legend),
	}

	if s.explainer != nil {
		explanation, err := s.explainer.Explain(expression, rendered, legend)
		if err != nil {
			// the table is still useful on its own
			slog.Warn("Could not generate explanation", "expression", expression, "error", err)
		} else {
			result.Explanation = explanation
			result.Document += "\n\nExplanation:\n" + explanation
		}
	}

	if s.resultFile != "" {
		if err := writeResult(s.resultFile, result.Document); err != nil {
			slog.Warn("Failed to write result file", "file", s.resultFile, "error", err)
		}
	}
	if s.csvFile != "" {
		if err := table.WriteCSV(s.csvFile); err != nil {
			slog.Warn("Failed to write CSV export", "file", s.csvFile, "error", err)
		}
	}

	s.report.RecordSolved(expression)
	return result, nil
}

// Report returns the session report collected so far.
func (s *Solver) Report() *Report {
	return &s.report
}

func writeResult(path, document string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// this isn't an error enough to stop execution. It's just to make it
		// easier for the user to find the file. Best effort.
		absPath = path
	}

	if err := os.WriteFile(absPath, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", absPath, err)
	}

	return nil
}
