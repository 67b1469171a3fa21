package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnotteam/finrep/internal/store"
)

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	require.NoError(t, runInit(&buf, dir, "Test Biz"))

	expectedFiles := []string{
		"finrep.yaml",
		".gitignore",
		store.QuotesFile,
		store.LedgerFile,
		store.PayrollFile,
		store.EquityFile,
		store.AssetsFile,
		store.PipelineFile,
	}
	for _, f := range expectedFiles {
		_, err := os.Stat(filepath.Join(dir, f))
		require.NoError(t, err, "file %s should exist", f)
	}

	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Contains(t, buf.String(), "Initialized finrep data directory")
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	require.NoError(t, runInit(&buf, dir, "My Company"))

	data, err := os.ReadFile(filepath.Join(dir, "finrep.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: My Company")
	assert.Contains(t, contents, "base_currency: PHP")
	assert.Contains(t, contents, "budget_rate: 58.5")
}

func TestInit_StreamHeaders(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	require.NoError(t, runInit(&buf, dir, "Test Biz"))

	data, err := os.ReadFile(filepath.Join(dir, store.QuotesFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "ref,status,final_sales_price")

	data, err = os.ReadFile(filepath.Join(dir, store.LedgerFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "category,sub_category,amount_php")
}

func TestInit_GitRepo(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	require.NoError(t, runInit(&buf, dir, "Test Biz"))

	_, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, "init should create a git repo when auto_commit is on")
}

func TestInit_LoadableByStore(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	require.NoError(t, runInit(&buf, dir, "Test Biz"))

	snap, err := store.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, snap.Quotes)
	assert.Empty(t, snap.LedgerEntries)
}
