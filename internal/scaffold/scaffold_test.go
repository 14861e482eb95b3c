package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soapywu/pbxpatch/internal/config"
	"github.com/soapywu/pbxpatch/pbxproj"
)

const (
	root        = "/work"
	projectFile = "/work/SampleApp.xcodeproj/project.pbxproj"
)

type recorder struct {
	calls [][2]string
	err   error
}

func (r *recorder) AddFolderGroup(name, relativePath string) (pbxproj.Outcome, error) {
	r.calls = append(r.calls, [2]string{name, relativePath})
	return pbxproj.Applied, r.err
}

func TestLayoutDirs(t *testing.T) {
	l := DefaultLayout(root, "SampleApp").WithOverrides("SampleApp", config.LayoutConfig{View: "Screens"})
	dirs := l.Dirs()
	require.Len(t, dirs, 7)
	assert.Equal(t, Dir{"Screens", "SampleApp/Screens"}, dirs[0])
	assert.Equal(t, Dir{"UI", "SampleApp/Core/UI"}, dirs[5])
	assert.Equal(t, Dir{"Base", "SampleApp/Core/Base"}, dirs[6])
}

func TestCreateMakesMissingDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work/SampleApp/View", 0o755))
	rec := &recorder{}

	created, err := New(fs, nil).Create(rec, DefaultLayout(root, "SampleApp"))
	require.NoError(t, err)
	require.Len(t, created, 6)
	assert.Equal(t, "Layouts", created[0].Name)

	for _, d := range created {
		exists, err := afero.DirExists(fs, filepath.Join(root, d.Path))
		require.NoError(t, err)
		assert.True(t, exists, d.Path)
	}
	assert.Equal(t, [2]string{"Layouts", "SampleApp/Layouts"}, rec.calls[0])
	assert.Len(t, rec.calls, 6)

	// second run has nothing to do
	rec = &recorder{}
	created, err = New(fs, nil).Create(rec, DefaultLayout(root, "SampleApp"))
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Empty(t, rec.calls)
}

func TestCreateReportsGroupFailure(t *testing.T) {
	rec := &recorder{err: errors.New("boom")}
	_, err := New(afero.NewMemMapFs(), nil).Create(rec, DefaultLayout(root, "SampleApp"))
	assert.ErrorContains(t, err, "boom")
	assert.Len(t, rec.calls, 1)
}

func TestCreateRegistersNestedGroups(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "pbxproj", "testdata", "project.pbxproj"))
	require.NoError(t, err)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, projectFile, data, 0o644))
	project, err := pbxproj.Open(projectFile, pbxproj.WithFs(fs))
	require.NoError(t, err)

	_, err = New(fs, nil).Create(project, DefaultLayout(root, "SampleApp"))
	require.NoError(t, err)

	doc, err := project.Document()
	require.NoError(t, err)
	text := doc.String()
	for _, name := range []string{"View", "Layouts", "Styles", "Bindings", "Core", "UI", "Base"} {
		assert.Equal(t, 1, strings.Count(text, "/* "+name+" */ = {"), name)
	}
	report, err := project.Validate()
	require.NoError(t, err)
	assert.True(t, report.OK(), "%v", report.Violations)

	groups, err := pbxproj.Entries(doc, pbxproj.SectionGroup)
	require.NoError(t, err)
	var core pbxproj.EntrySpan
	for _, g := range groups {
		if g.Comment == "Core" {
			core = g
		}
	}
	require.NotEmpty(t, core.ID)
	children, err := core.ListValues(doc, "children")
	require.NoError(t, err)
	assert.Len(t, children, 2)
}
