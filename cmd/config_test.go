package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withGlobalFlags overrides the global flags for the test.
func withGlobalFlags(t *testing.T, cfgFile, ledger string, debug bool) {
	t.Helper()
	oldConfig, oldLedger, oldVerbose := configFile, ledgerFile, verbose
	configFile, ledgerFile, verbose = &cfgFile, &ledger, &debug
	t.Cleanup(func() { configFile, ledgerFile, verbose = oldConfig, oldLedger, oldVerbose })
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("empty file", func(t *testing.T) {
		name := filepath.Join(dir, "empty.yaml")
		require.NoError(t, writeFile(name, ""))
		cfg, err := LoadConfig(name)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("partial file", func(t *testing.T) {
		name := filepath.Join(dir, "partial.yaml")
		require.NoError(t, writeFile(name, "ledger_file: cap.jsonl\ncurrency: EUR\nworkers: 4\n"))
		cfg, err := LoadConfig(name)
		require.NoError(t, err)

		want := DefaultConfig()
		want.LedgerFile = "cap.jsonl"
		want.Currency = "EUR"
		want.Workers = 4
		assert.Equal(t, want, cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		name := filepath.Join(dir, "unknown.yaml")
		require.NoError(t, writeFile(name, "ledger: cap.jsonl\n"))
		_, err := LoadConfig(name)
		assert.Error(t, err)
	})
}

func TestConfigure_Precedence(t *testing.T) {
	old := config
	t.Cleanup(func() { config = old })

	dir := t.TempDir()
	name := filepath.Join(dir, "captable.yaml")
	require.NoError(t, writeFile(name, "ledger_file: from-file.jsonl\ncurrency: EUR\norder: first-seen\n"))

	t.Run("file", func(t *testing.T) {
		withGlobalFlags(t, name, "", false)
		require.NoError(t, Configure())
		assert.Equal(t, "from-file.jsonl", config.LedgerFile)
		assert.Equal(t, "EUR", config.Currency)
		assert.Equal(t, "first-seen", config.Order)
		assert.False(t, config.Verbose)
	})

	t.Run("environment", func(t *testing.T) {
		withGlobalFlags(t, name, "", false)
		t.Setenv(EnvLedgerFile, "from-env.jsonl")
		t.Setenv(EnvCurrency, "USD")
		t.Setenv(EnvVerbose, "true")
		require.NoError(t, Configure())
		assert.Equal(t, "from-env.jsonl", config.LedgerFile)
		assert.Equal(t, "USD", config.Currency)
		assert.True(t, config.Verbose)
	})

	t.Run("flags", func(t *testing.T) {
		withGlobalFlags(t, name, "from-flag.jsonl", true)
		t.Setenv(EnvLedgerFile, "from-env.jsonl")
		t.Setenv(EnvVerbose, "false")
		require.NoError(t, Configure())
		assert.Equal(t, "from-flag.jsonl", config.LedgerFile)
		assert.True(t, config.Verbose)
	})
}

func TestConfigure_Invalid(t *testing.T) {
	old := config
	t.Cleanup(func() { config = old })

	dir := t.TempDir()
	testCases := []struct {
		name    string
		content string
		env     string
	}{
		{name: "order", content: "order: random\n"},
		{name: "workers", content: "workers: 0\n"},
		{name: "currency", content: "currency: XXXX\n"},
		{name: "syntax", content: "workers: [\n"},
		{name: "verbose env", env: "loud"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name := filepath.Join(dir, tc.name+".yaml")
			require.NoError(t, writeFile(name, tc.content))
			withGlobalFlags(t, name, "", false)
			if tc.env != "" {
				t.Setenv(EnvVerbose, tc.env)
			}
			assert.Error(t, Configure())
		})
	}
}
