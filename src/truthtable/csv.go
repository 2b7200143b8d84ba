package truthtable

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteCSV exports the table to a CSV file: a header with the variable names,
// the numbered step columns and a final "result" column, then one record per
// row.
func (t *Table) WriteCSV(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// not worth stopping for, the relative path still works. Best effort.
		absPath = path
	}

	file, err := os.Create(absPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", absPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := append(t.headers(), "result")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header %v: %w", header, err)
	}

	for _, row := range t.Rows {
		record := make([]string, 0, len(header))
		for _, v := range row.Values {
			record = append(record, bit(v))
		}
		for i := range t.StepLabels {
			if i < len(row.Steps) {
				record = append(record, bit(row.Steps[i]))
			} else {
				record = append(record, Placeholder)
			}
		}
		record = append(record, bit(row.Final))

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %v: %w", record, err)
		}
	}

	return nil
}
