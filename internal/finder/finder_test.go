package finder

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("x"), 0o644))
	}
	return fs
}

func TestFindProjectFile(t *testing.T) {
	fs := tree(t,
		"/work/SampleApp/SampleApp.xcodeproj/project.pbxproj",
		"/work/SampleApp/Pods/Pods.xcodeproj/project.pbxproj",
		"/work/SampleApp/Vendor/Deep/Lib.xcodeproj/project.pbxproj",
	)
	got, err := FindProjectFile(fs, "/work")
	require.NoError(t, err)
	assert.Equal(t, "/work/SampleApp/SampleApp.xcodeproj/project.pbxproj", got)
}

func TestFindProjectFileMissing(t *testing.T) {
	fs := tree(t, "/work/README.md")
	_, err := FindProjectFile(fs, "/work")
	assert.True(t, errors.Is(err, ErrProjectNotFound))
}

func TestFindInfoPlist(t *testing.T) {
	fs := tree(t,
		"/work/SampleApp.xcodeproj/project.pbxproj",
		"/work/SampleApp/Info.plist",
		"/work/SampleApp/Pods/Alamofire/Info.plist",
		"/work/build/Release/Info.plist",
	)
	got, err := FindInfoPlist(fs, "/work")
	require.NoError(t, err)
	assert.Equal(t, "/work/SampleApp/Info.plist", got)

	_, err = FindInfoPlist(tree(t, "/work/build/Info.plist"), "/work")
	assert.True(t, errors.Is(err, ErrInfoPlistNotFound))
}

func TestDetectProjectName(t *testing.T) {
	p := "/work/SampleApp/SampleApp.xcodeproj/project.pbxproj"
	assert.Equal(t, "SampleApp", DetectProjectName(p))
	assert.Equal(t, "/work/SampleApp", ProjectRoot(p))
}
