package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/calculate-sales/internal/types"
)

// execute runs the root command with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgFile = ""
	verbose = false
	dryRun = false
	branchOnly = false
	outputDir = ""
	workbookFile = ""
	printTables = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func salesDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"branch.lst":    "013,Shibuya\n001,Sapporo\n",
		"commodity.lst": "SFT00001,Office Suite\n",
		"00000001.rcd":  "013\nSFT00001\n1000\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestProcess_WritesSummaries(t *testing.T) {
	dir := salesDir(t)

	out, err := execute(t, "process", dir)
	require.NoError(t, err)

	assert.Empty(t, out)
	data, err := os.ReadFile(filepath.Join(dir, "branch.out"))
	require.NoError(t, err)
	assert.Equal(t, "013,Shibuya,1000\n001,Sapporo,0\n", string(data))
}

func TestProcess_ArgumentCount(t *testing.T) {
	for _, args := range [][]string{{"process"}, {"process", "a", "b"}} {
		_, err := execute(t, args...)

		require.Error(t, err)
		assert.True(t, types.IsKind(err, types.KindUnknown))
		assert.Equal(t, "an unexpected error occurred", err.Error())
	}
}

func TestProcess_PrintDryRun(t *testing.T) {
	dir := salesDir(t)

	out, err := execute(t, "process", dir, "--dry-run", "--print")
	require.NoError(t, err)

	assert.Contains(t, out, "=== branch ===")
	assert.Contains(t, out, "=== commodity ===")
	assert.Contains(t, out, "Shibuya")
	assert.NoFileExists(t, filepath.Join(dir, "branch.out"))
}

func TestProcess_OutputDirAndWorkbookFlags(t *testing.T) {
	dir := salesDir(t)
	out := filepath.Join(t.TempDir(), "reports")

	_, err := execute(t, "process", dir, "--output-dir", out, "--workbook", "summary.xlsx")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "branch.out"))
	assert.FileExists(t, filepath.Join(out, "commodity.out"))
	assert.FileExists(t, filepath.Join(out, "summary.xlsx"))
}

func TestProcess_FailureMessage(t *testing.T) {
	dir := salesDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00000002.rcd"), []byte("999\nSFT00001\n5\n"), 0644))

	_, err := execute(t, "process", dir)

	require.Error(t, err)
	assert.Equal(t, "00000002.rcd has an invalid branch code", err.Error())
	assert.NoFileExists(t, filepath.Join(dir, "branch.out"))
}

func TestProcess_ExplicitConfigMustExist(t *testing.T) {
	dir := salesDir(t)

	_, err := execute(t, "--config", filepath.Join(dir, "missing.yaml"), "process", dir)

	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "Calculate Sales")
	assert.Contains(t, out, Version)
}
