// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (temp dirs)
// PURPOSE: Test layered configuration loading and validation

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/envprof/pkg/errors"
)

// clearEnv unsets every ENVPROF_ variable the loader reads so tests do
// not leak into each other.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAppName, EnvConfigDir, EnvPrefix, EnvTemplateFile, EnvSchemaFile, EnvInteractive} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.AppName)
	assert.Equal(t, "", cfg.ConfigDir)
	assert.Equal(t, "", cfg.Template)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAppName, "myapp")
	t.Setenv(EnvConfigDir, "/tmp/myapp-config")
	t.Setenv(EnvInteractive, "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "myapp", cfg.AppName)
	assert.Equal(t, "/tmp/myapp-config", cfg.ConfigDir)
	assert.True(t, cfg.Interactive)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := `
app_name = "fileapp"
extra_placeholders = ["REGION", "TEAM"]
extra_variables = ["LEGACY_FLAG"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "fileapp", cfg.AppName)
	assert.Equal(t, []string{"REGION", "TEAM"}, cfg.ExtraPlaceholders)
	assert.Equal(t, []string{"LEGACY_FLAG"}, cfg.ExtraVariables)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`app_name = "fromfile"`), 0644))
	t.Setenv(EnvAppName, "fromenv")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "fromenv", cfg.AppName)
}

func TestMissingFileIsSkipped(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.AppName)
}

func TestTemplateFileLoaded(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	tmplPath := filepath.Join(dir, "default-profile")
	require.NoError(t, os.WriteFile(tmplPath, []byte("a=1\n#b=2\n"), 0644))
	t.Setenv(EnvTemplateFile, tmplPath)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "a=1\n#b=2\n", cfg.Template)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"app name set", Config{AppName: "app"}, false},
		{"config dir set", Config{ConfigDir: "/etc/app"}, false},
		{"neither set", Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
		})
	}
}
