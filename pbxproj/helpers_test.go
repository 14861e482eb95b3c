package pbxproj

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const projectPath = "/work/SampleApp.xcodeproj/project.pbxproj"

func fixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "project.pbxproj"))
	require.NoError(t, err)
	return string(data)
}

func memFs(t *testing.T, content string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(filepath.Dir(projectPath), 0o755))
	require.NoError(t, afero.WriteFile(fs, projectPath, []byte(content), 0o644))
	return fs
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

// dirEntries lists the names in the project directory, to catch stray
// backup or temp files.
func dirEntries(t *testing.T, fs afero.Fs) []string {
	t.Helper()
	infos, err := afero.ReadDir(fs, filepath.Dir(projectPath))
	require.NoError(t, err)
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names
}

// minimalProject has the required top-level keys and only the sections
// named in the body.
func minimalProject(body string) string {
	return "// !$*UTF8*$!\n{\n\tarchiveVersion = 1;\n\tclasses = {\n\t};\n\tobjectVersion = 56;\n\tobjects = {\n" +
		body +
		"\t};\n\trootObject = AAAAAAAAAAAAAAAAAAAAAAAA /* Project object */;\n}\n"
}
