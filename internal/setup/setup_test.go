package setup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soapywu/pbxpatch/internal/config"
	"github.com/soapywu/pbxpatch/internal/plist"
	"github.com/soapywu/pbxpatch/pbxproj"
)

const (
	projectFile = "/work/SampleApp.xcodeproj/project.pbxproj"
	infoPlist   = "/work/SampleApp/Info.plist"
)

func workspace(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	project, err := os.ReadFile(filepath.Join("..", "..", "pbxproj", "testdata", "project.pbxproj"))
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, projectFile, project, 0o644))
	info, err := os.ReadFile(filepath.Join("..", "plist", "testdata", "Info.plist"))
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, infoPlist, info, 0o644))
	return fs
}

func read(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func outcomes(r Result) map[string]pbxproj.Outcome {
	m := make(map[string]pbxproj.Outcome, len(r.Steps))
	for _, s := range r.Steps {
		m[s.Name] = s.Outcome
	}
	return m
}

func TestPackages(t *testing.T) {
	fs := workspace(t)
	cfg := config.Default()
	s, err := New(fs, projectFile, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []pbxproj.SwiftPackage{SwiftJsonUI}, s.Packages())

	cfg.UseNetwork = true
	cfg.Target = "SampleApp"
	cfg.Packages = []config.PackageConfig{{Name: "Foo", URL: "https://example.com/Foo", MinimumVersion: "1.0.0"}}
	pkgs := s.Packages()
	require.Len(t, pkgs, 3)
	assert.Equal(t, "SimpleApiNetwork", pkgs[1].Name)
	assert.Equal(t, "Foo", pkgs[2].Name)
	for _, p := range pkgs {
		assert.Equal(t, "SampleApp", p.Target)
	}
}

func TestLibraries(t *testing.T) {
	fs := workspace(t)
	cfg := config.Default()
	cfg.UseNetwork = true
	s, err := New(fs, projectFile, cfg, nil)
	require.NoError(t, err)

	result, err := s.Libraries()
	require.NoError(t, err)
	assert.Equal(t, map[string]pbxproj.Outcome{
		"package SwiftJsonUI":      pbxproj.Applied,
		"package SimpleApiNetwork": pbxproj.Applied,
	}, outcomes(result))

	text := read(t, fs, projectFile)
	assert.Contains(t, text, "https://github.com/Tai-Kimura/SwiftJsonUI")
	assert.Contains(t, text, "minimumVersion = 2.1.8;")

	result, err = s.Libraries()
	require.NoError(t, err)
	for _, step := range result.Steps {
		assert.Equal(t, pbxproj.Skipped, step.Outcome, step.Name)
	}
	assert.Equal(t, text, read(t, fs, projectFile))
}

func TestDirectories(t *testing.T) {
	fs := workspace(t)
	cfg := config.Default()
	cfg.BuildPhases = []config.BuildPhaseConfig{{Name: "HotLoad", Script: "\"${SRCROOT}/hotload.sh\""}}
	s, err := New(fs, projectFile, cfg, nil)
	require.NoError(t, err)

	result, err := s.Directories()
	require.NoError(t, err)
	got := outcomes(result)
	assert.Equal(t, pbxproj.Applied, got["directory SampleApp/View"])
	assert.Equal(t, pbxproj.Applied, got["package SwiftJsonUI"])
	assert.Equal(t, pbxproj.Applied, got["build phase HotLoad"])
	assert.Equal(t, pbxproj.Applied, got["info.plist"])

	exists, err := afero.DirExists(fs, "/work/SampleApp/Core/Base")
	require.NoError(t, err)
	assert.True(t, exists)

	text := read(t, fs, projectFile)
	assert.Contains(t, text, "/* Layouts */ = {")
	assert.Contains(t, text, "name = HotLoad;")
	assert.NotContains(t, read(t, fs, infoPlist), plist.StoryboardKey)

	report, err := pbxproj.NewStructureValidator(fs).Validate(projectFile)
	require.NoError(t, err)
	assert.True(t, report.OK(), "%v", report.Violations)

	// everything is in place the second time
	result, err = s.Directories()
	require.NoError(t, err)
	for _, step := range result.Steps {
		assert.Equal(t, pbxproj.Skipped, step.Outcome, step.Name)
	}
	assert.Equal(t, text, read(t, fs, projectFile))
}

func TestDirectoriesWithoutInfoPlist(t *testing.T) {
	fs := workspace(t)
	require.NoError(t, fs.Remove(infoPlist))
	s, err := New(fs, projectFile, nil, nil)
	require.NoError(t, err)

	result, err := s.Directories()
	require.NoError(t, err)
	assert.Equal(t, pbxproj.Skipped, outcomes(result)["info.plist"])
	assert.True(t, strings.Contains(read(t, fs, projectFile), "SwiftJsonUI"))
}
