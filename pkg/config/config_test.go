package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "Acme Bank", cfg.BankName)
	require.NotNil(t, cfg.Store)
	assert.Empty(t, cfg.Store.Dir)
	assert.Equal(t, "customers.txt", cfg.Store.CustomersFile)
	assert.Equal(t, "accounts.txt", cfg.Store.AccountsFile)
	assert.Equal(t, "transactions.txt", cfg.Store.TransactionsFile)
	require.NotNil(t, cfg.Log)
	assert.Equal(t, 4, cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BANK_NAME", "Globex Savings")
	t.Setenv("STORE_DIR", "/var/lib/bank")
	t.Setenv("STORE_ACCOUNTS_FILE", "acc.txt")
	t.Setenv("LOG_LEVEL", "-4")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Globex Savings", cfg.BankName)
	assert.Equal(t, "/var/lib/bank", cfg.Store.Dir)
	assert.Equal(t, "acc.txt", cfg.Store.AccountsFile)
	assert.Equal(t, -4, cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvFileFromParent(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "nested", "dir")
	require.NoError(t, os.MkdirAll(child, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "bank.env"), []byte("BANK_NAME=Initech Mutual\n"), 0o644))
	chdir(t, child)
	// godotenv does not override variables that are already set.
	t.Setenv("BANK_NAME", "")
	require.NoError(t, os.Unsetenv("BANK_NAME"))

	cfg, err := Load("missing.env", "bank.env")
	require.NoError(t, err)
	assert.Equal(t, "Initech Mutual", cfg.BankName)
}

func TestLoadInvalidLevel(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestFindEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := FindEnvFile("")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), nil, 0o644))
	found, err := FindEnvFile("")
	require.NoError(t, err)
	assert.Equal(t, ".env", filepath.Base(found))

	abs := filepath.Join(dir, ".env")
	found, err = FindEnvFile(abs)
	require.NoError(t, err)
	assert.Equal(t, abs, found)
}

// chdir mirrors testing.T.Chdir (Go 1.24) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Open(".")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(dir) {
		if dir, err = os.Getwd(); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		err := oldwd.Chdir()
		oldwd.Close()
		if err != nil {
			panic("testing.Chdir: " + err.Error())
		}
	})
}
