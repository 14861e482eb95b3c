package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soapywu/pbxpatch/internal/config"
	"github.com/soapywu/pbxpatch/internal/finder"
	"github.com/soapywu/pbxpatch/pbxproj"
)

const (
	workDir     = "/work"
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

func run(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(fs)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", workDir, "--log-level", "none"}, args...))
	err := root.Execute()
	return out.String(), err
}

func read(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestValidate(t *testing.T) {
	fs := workspace(t)
	out, err := run(t, fs, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, projectFile+": ok")

	broken := strings.Replace(read(t, fs, projectFile), "/* End PBXGroup section */", "", 1)
	require.NoError(t, afero.WriteFile(fs, projectFile, []byte(broken), 0o644))
	out, err = run(t, fs, "validate")
	require.Error(t, err)
	assert.Equal(t, ExitStructuralError, ExitCodeForError(err))
	assert.Contains(t, out, "sections")
}

func TestPackageAdd(t *testing.T) {
	fs := workspace(t)
	out, err := run(t, fs, "package", "add", "Foo", "https://example.com/Foo", "--min-version", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "package Foo: applied\n", out)
	assert.Contains(t, read(t, fs, projectFile), `repositoryURL = "https://example.com/Foo";`)

	out, err = run(t, fs, "package", "add", "Foo", "https://example.com/Foo", "--min-version", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "package Foo: skipped\n", out)
}

func TestPackageAddUnknownTargetRollsBack(t *testing.T) {
	fs := workspace(t)
	before := read(t, fs, projectFile)
	_, err := run(t, fs, "package", "add", "Foo", "https://example.com/Foo", "--min-version", "1.0.0", "--target", "Widget")
	require.Error(t, err)
	assert.Equal(t, ExitStructuralError, ExitCodeForError(err))
	assert.Equal(t, before, read(t, fs, projectFile))
}

func TestGroupFileAndPhaseAdd(t *testing.T) {
	fs := workspace(t)

	out, err := run(t, fs, "group", "add", "View", "--path", "SampleApp/View")
	require.NoError(t, err)
	assert.Equal(t, "group View: applied\n", out)

	out, err = run(t, fs, "file", "add", "SampleApp/Foo.swift", "--group", "SampleApp")
	require.NoError(t, err)
	assert.Equal(t, "file SampleApp/Foo.swift: applied\n", out)

	out, err = run(t, fs, "phase", "add", "HotLoad", "--script", "echo hotload")
	require.NoError(t, err)
	assert.Equal(t, "build phase HotLoad: applied\n", out)

	text := read(t, fs, projectFile)
	assert.Contains(t, text, "/* View */ = {")
	assert.Contains(t, text, "/* Foo.swift in Sources */")
	assert.Contains(t, text, `shellScript = "echo hotload";`)
	_, err = run(t, fs, "validate")
	assert.NoError(t, err)
}

func TestSetupAndPlist(t *testing.T) {
	fs := workspace(t)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(workDir, config.ConfigFileName), []byte("use_network: true\n"), 0o644))

	out, err := run(t, fs, "setup", "libraries")
	require.NoError(t, err)
	assert.Contains(t, out, "package SwiftJsonUI: applied")
	assert.Contains(t, out, "package SimpleApiNetwork: applied")

	out, err = run(t, fs, "plist", "strip-storyboard")
	require.NoError(t, err)
	assert.Equal(t, infoPlist+": applied\n", out)

	out, err = run(t, fs, "setup", "directories")
	require.NoError(t, err)
	assert.Contains(t, out, "directory SampleApp/Layouts: applied")
	assert.Contains(t, out, "package SwiftJsonUI: skipped")
	assert.Contains(t, out, "info.plist: skipped")
}

func TestProjectFromConfig(t *testing.T) {
	fs := workspace(t)
	require.NoError(t, fs.Rename(projectFile, "/work/Other.pbxproj"))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(workDir, config.ConfigFileName), []byte("project_file: Other.pbxproj\n"), 0o644))

	out, err := run(t, fs, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "/work/Other.pbxproj: ok")
}

func TestUsageErrors(t *testing.T) {
	fs := workspace(t)
	tests := [][]string{
		{"group", "add"},
		{"package", "add", "Foo"},
		{"package", "add", "Foo", "https://example.com/Foo"},
		{"validate", "--nope"},
		{"frobnicate"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := run(t, fs, args...)
			require.Error(t, err)
			assert.Equal(t, ExitUsageError, ExitCodeForError(err), err.Error())
		})
	}
}

func TestNoProjectFound(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), "validate")
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, ExitCodeForError(err))
}

func TestExitCodeForError(t *testing.T) {
	ioErr := &pbxproj.IOError{Op: "write", Path: projectFile, Err: os.ErrPermission}
	structural := &pbxproj.StructuralError{Op: "add", Reason: "broken"}
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", errors.New("boom"), ExitGeneralError},
		{"usage", ErrUsage, ExitUsageError},
		{"config", config.ErrInvalidConfig, ExitConfigError},
		{"no project", finder.ErrProjectNotFound, ExitConfigError},
		{"io", ioErr, ExitIOError},
		{"structural", structural, ExitStructuralError},
		{"restore", &pbxproj.BackupRestoreFailure{Op: "add", Cause: structural, RestoreErr: ioErr}, ExitRestoreFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}
