package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "branch.lst", cfg.BranchDefinitionFile)
	assert.Equal(t, "commodity.lst", cfg.CommodityDefinitionFile)
	assert.Equal(t, "branch.out", cfg.BranchSummaryFile)
	assert.Equal(t, "commodity.out", cfg.CommoditySummaryFile)
	assert.Equal(t, "auto", cfg.Encoding)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.OutputDir)
	assert.Empty(t, cfg.WorkbookFile)
	assert.NoError(t, Validate(cfg))
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, `
branch_definition_file: shops.lst
encoding: Shift_JIS
output_dir: /tmp/reports
workbook_file: summary.xlsx
log_level: INFO
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "shops.lst", cfg.BranchDefinitionFile)
	assert.Equal(t, "commodity.lst", cfg.CommodityDefinitionFile)
	assert.Equal(t, "shift_jis", cfg.Encoding)
	assert.Equal(t, "/tmp/reports", cfg.OutputDir)
	assert.Equal(t, "summary.xlsx", cfg.WorkbookFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(path, true)
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("", true)
	require.NoError(t, err)
	assert.Equal(t, "branch.lst", cfg.BranchDefinitionFile)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "log_level: info\nbranch_summary_file: a.out\n")
	t.Setenv("SALES_LOG_LEVEL", "debug")
	t.Setenv("SALES_COMMODITY_SUMMARY_FILE", "items.out")

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "a.out", cfg.BranchSummaryFile)
	assert.Equal(t, "items.out", cfg.CommoditySummaryFile)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown log level", "log_level: verbose\n"},
		{"unknown encoding", "encoding: latin1\n"},
		{"path in file name", "branch_definition_file: ../branch.lst\n"},
		{"workbook without xlsx extension", "workbook_file: summary.csv\n"},
		{"malformed yaml", "log_level: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), true)
			assert.Error(t, err)
		})
	}
}
