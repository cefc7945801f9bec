package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears key for the test while keeping t.Setenv's restore hook.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_EnvOverrides(t *testing.T) {
	unsetenv(t, "SITEDESK_CONFIG")
	t.Setenv("SITEDESK_DB", "/tmp/test-sitedesk.db")
	t.Setenv("SITEDESK_LOG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test-sitedesk.db", cfg.DBPath)
	assert.True(t, cfg.Log)
}

func TestLoad_DefaultDBPath(t *testing.T) {
	unsetenv(t, "SITEDESK_CONFIG")
	unsetenv(t, "SITEDESK_DB")
	unsetenv(t, "SITEDESK_LOG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.DBPath, ".sitedesk")
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /data/site.db\nlog: true\n"), 0644))

	t.Setenv("SITEDESK_CONFIG", path)
	unsetenv(t, "SITEDESK_DB")
	unsetenv(t, "SITEDESK_LOG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/site.db", cfg.DBPath)
	assert.True(t, cfg.Log)
}

func TestLoadUsers_Defaults(t *testing.T) {
	users, err := LoadUsers("")
	require.NoError(t, err)
	require.Len(t, users, 3)
	for _, u := range users {
		assert.NotEmpty(t, u.ID, "ids are assigned at load")
		assert.NotEmpty(t, u.Email)
	}
}

func TestLoadUsers_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"users:\n  - email: boss@example.com\n    password: hunter2\n    name: Boss\n    role: admin\n"), 0644))

	users, err := LoadUsers(path)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "boss@example.com", users[0].Email)
	assert.NotEmpty(t, users[0].ID)
}

func TestLoadUsers_MissingFile(t *testing.T) {
	_, err := LoadUsers("/does/not/exist.yaml")
	assert.Error(t, err)
}
