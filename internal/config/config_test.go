package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dir = "/work"

func writeFile(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad_AllFields(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, ConfigFileName, `project_file: SampleApp.xcodeproj/project.pbxproj
source_directory: SampleApp
target: SampleApp
use_network: true
log_level: debug
layout:
  view: Screens
  ui: Shared/UI
packages:
  - name: Foo
    url: https://example.com/Foo
    minimum_version: 1.0.0
build_phases:
  - name: HotLoad
    script: ./hotload.sh
`)

	cfg, err := Load(fs, dir)
	require.NoError(t, err)
	assert.Equal(t, "SampleApp.xcodeproj/project.pbxproj", cfg.ProjectFile)
	assert.Equal(t, "SampleApp", cfg.SourceDirectory)
	assert.Equal(t, "SampleApp", cfg.Target)
	assert.True(t, cfg.UseNetwork)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Screens", cfg.Layout.View)
	assert.Equal(t, "Shared/UI", cfg.Layout.UI)
	assert.Equal(t, []PackageConfig{{Name: "Foo", URL: "https://example.com/Foo", MinimumVersion: "1.0.0"}}, cfg.Packages)
	require.Len(t, cfg.BuildPhases, 1)
	assert.Equal(t, "./hotload.sh", cfg.BuildPhases[0].Script)
}

func TestLoad_MinimalYAMLKeepsDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, ConfigFileName, "use_network: false\n")

	cfg, err := Load(fs, dir)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.UseNetwork)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), dir)
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":           "{{invalid",
		"incomplete package": "packages:\n  - name: Foo\n",
		"unnamed phase":      "build_phases:\n  - script: echo\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeFile(t, fs, ConfigFileName, content)
			cfg, err := Load(fs, dir)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, cfg)
		})
	}
}

func TestResolve_DotEnvOverrides(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, ConfigFileName, "project_file: A.xcodeproj/project.pbxproj\nuse_network: false\n")
	writeFile(t, fs, EnvFileName, "PBXPATCH_PROJECT_FILE=B.xcodeproj/project.pbxproj\nPBXPATCH_USE_NETWORK=true\n")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Resolve(fs, dir)
	require.NoError(t, err)
	assert.Equal(t, "B.xcodeproj/project.pbxproj", cfg.ProjectFile)
	assert.True(t, cfg.UseNetwork)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestResolve_ProcessEnvWinsOverDotEnv(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, EnvFileName, "PBXPATCH_LOG_LEVEL=debug\n")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Resolve(fs, dir)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestResolve_WithoutFiles(t *testing.T) {
	cfg, err := Resolve(afero.NewMemMapFs(), dir)
	require.NoError(t, err)
	assert.Equal(t, Default().LogLevel, cfg.LogLevel)
}

func TestApplyEnv_InvalidBool(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(key string) (string, bool) {
		if key == EnvUseNetwork {
			return "sometimes", true
		}
		return "", false
	})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
