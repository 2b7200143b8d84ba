package truthtable_test

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/dmsolve/truthtable/src/helpers"
	"github.com/dmsolve/truthtable/src/truthtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderString(t *testing.T) {
	table, err := truthtable.Build("(A конъюнкция B)")
	require.NoError(t, err)

	rendered := table.RenderString()

	assert.Contains(t, rendered, "A")
	assert.Contains(t, rendered, "B")
	assert.Contains(t, rendered, "1")
	assert.Contains(t, rendered, "0")

	// four data rows plus the header
	assert.GreaterOrEqual(t, strings.Count(rendered, "\n"), 5)
}

func TestStepLegendIsLocalized(t *testing.T) {
	table, err := truthtable.Build("((A конъюнкция B) дизъюнкция отрицание(C))")
	require.NoError(t, err)

	legend := table.StepLegend()

	assert.Equal(t,
		"Steps:\n"+
			"1. (A конъюнкция B)\n"+
			"2. отрицание(C)\n"+
			"3. ((A конъюнкция B) дизъюнкция отрицание(C))",
		legend,
	)
}

func TestStepLegendWithoutSteps(t *testing.T) {
	table, err := truthtable.Build("A")
	require.NoError(t, err)

	assert.Equal(t, "Steps:", table.StepLegend())
}

func TestWriteCSV(t *testing.T) {
	table, err := truthtable.Build("(A конъюнкция B)")
	require.NoError(t, err)

	path := helpers.CreateTempFile(t, "table-*.csv").Name()
	require.NoError(t, table.WriteCSV(path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 5)
	assert.Equal(t, []string{"A", "B", "1", "result"}, records[0])
	assert.Equal(t, []string{"1", "1", "1", "1"}, records[1])
	assert.Equal(t, []string{"1", "0", "0", "0"}, records[2])
	assert.Equal(t, []string{"0", "1", "0", "0"}, records[3])
	assert.Equal(t, []string{"0", "0", "0", "0"}, records[4])
}
