package config

import (
	"os"
	"testing"

	"github.com/dmsolve/truthtable/src/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {

	t.Run("valid, existing config", func(t *testing.T) {
		content := `result-file: "out.txt"
csv-file: "table.csv"
model: "gemini-1.5-flash"`
		configFile := helpers.CreateTempFileWithContents(t, content)

		config, err := LoadConfig(configFile)
		require.NoError(t, err)

		assert.Equal(t, "out.txt", config.ResultFile)
		assert.Equal(t, "table.csv", config.CSVFile)
		assert.Equal(t, "gemini-1.5-flash", config.Model)
	})

	t.Run("missing keys fall back to defaults", func(t *testing.T) {
		configFile := helpers.CreateTempFileWithContents(t, `csv-file: "table.csv"`)

		config, err := LoadConfig(configFile)
		require.NoError(t, err)

		assert.Equal(t, DefaultResultFile, config.ResultFile)
		assert.Equal(t, DefaultModel, config.Model)
	})

	t.Run("invalid, existing config", func(t *testing.T) {
		content := `foo` // no keys
		configFile := helpers.CreateTempFileWithContents(t, content)

		_, err := LoadConfig(configFile)
		assert.False(t, os.IsNotExist(err))
		assert.Error(t, err)
	})

	t.Run("non-existing config", func(t *testing.T) {
		_, err := LoadConfig("non-existing.yaml")
		assert.True(t, os.IsNotExist(err))
	})
}

func TestWriteConfig(t *testing.T) {
	configFile := helpers.CreateTempFile(t, "test_config.yaml").Name()

	config := &Config{
		ResultFile: "out.txt",
		Model:      "gemini-pro",

		Path: configFile,
	}

	err := config.Write()
	require.NoError(t, err)

	// Verify file content
	content, err := os.ReadFile(configFile)
	require.NoError(t, err)

	assert.Contains(t, string(content), "result-file: out.txt\n")
	assert.Contains(t, string(content), "model: gemini-pro\n")
}
