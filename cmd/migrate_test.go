package cmd

import (
	"path/filepath"
	"testing"

	"github.com/killallgit/news-finder/pkg/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCommand_Help(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "migrate lists subcommands",
			args:     []string{"migrate", "--help"},
			contains: []string{"Manage the SQLite session store", "up", "status", "purge"},
		},
		{
			name:     "purge shows idle ttl flag",
			args:     []string{"migrate", "purge", "--help"},
			contains: []string{"--idle-ttl"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
		})
	}
}

func TestMigrateCommand_FileStore(t *testing.T) {
	require.NoError(t, config.Init())

	path := filepath.Join(t.TempDir(), "sessions.db")
	viper.Set("database.path", path)
	t.Cleanup(func() { viper.Set("database.path", ":memory:") })

	output, err := execute(t, "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, output, "Schema:    missing")

	output, err = execute(t, "migrate", "up")
	require.NoError(t, err)
	assert.Contains(t, output, "Session schema is up to date")

	output, err = execute(t, "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, output, "Schema:    present")
	assert.Contains(t, output, "Sessions:  0")

	output, err = execute(t, "migrate", "purge", "--idle-ttl", "1h")
	require.NoError(t, err)
	assert.Contains(t, output, "Removed 0 session(s) idle for more than 1h0m0s")
}
