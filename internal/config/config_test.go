package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into an empty directory so no configs/ or .env is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testChdir(t, dir)
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "urls.db", cfg.Database.Name)
	assert.Equal(t, 1, cfg.Database.SchemaVersion)
	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoadConfig_File(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	content := `
database:
  name: bookmarks.db
  schema_version: 3
export:
  dir: out
log:
  level: debug
  pretty: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(content), 0o644))

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "bookmarks.db", cfg.Database.Name)
	assert.Equal(t, 3, cfg.Database.SchemaVersion)
	assert.Equal(t, "out", cfg.Export.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("export:\n  dir: elsewhere\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", cfg.Export.Dir)
	assert.Equal(t, "urls.db", cfg.Database.Name)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	chdir(t)
	t.Setenv("URLMANAGER_DATABASE_NAME", "env.db")
	t.Setenv("URLMANAGER_EXPORT_DIR", "env-exports")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.Database.Name)
	assert.Equal(t, "env-exports", cfg.Export.Dir)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("URLMANAGER_LOG_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("URLMANAGER_LOG_LEVEL") })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "malformed yaml",
			content: "database: [unclosed\n",
			errMsg:  "error reading config file",
		},
		{
			name:    "schema version zero",
			content: "database:\n  schema_version: 0\n",
			errMsg:  "schema_version must be >= 1",
		},
		{
			name:    "empty database name",
			content: "database:\n  name: \"\"\n",
			errMsg:  "database.name must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := chdir(t)
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
