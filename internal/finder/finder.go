// Package finder locates the Xcode project file and the app's Info.plist
// inside a working directory.
package finder

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

var (
	ErrProjectNotFound   = errors.New("no .xcodeproj/project.pbxproj found")
	ErrInfoPlistNotFound = errors.New("no Info.plist found")
)

const (
	projectPattern   = "**/*.xcodeproj/project.pbxproj"
	infoPlistPattern = "**/Info.plist"
)

// bundles, dependencies and build output never hold the app's own files
var (
	skippedExts = map[string]bool{".xcodeproj": true, ".xcworkspace": true}
	skippedDirs = map[string]bool{"Pods": true, ".build": true, "DerivedData": true, "build": true}
)

// glob matches pattern under root. A match is dropped when the directory
// `up` levels above it is one of the skipped ones.
func glob(fs afero.Fs, root, pattern string, up int) ([]string, error) {
	iofs := afero.NewIOFS(afero.NewBasePathFs(fs, root))
	matches, err := doublestar.Glob(iofs, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s in %s: %w", pattern, root, err)
	}
	kept := matches[:0]
	for _, m := range matches {
		dir := m
		for i := 0; i < up; i++ {
			dir = path.Dir(dir)
		}
		if !isSkipped(dir) {
			kept = append(kept, m)
		}
	}
	// shallowest first, then by name
	sort.Slice(kept, func(i, j int) bool {
		di, dj := strings.Count(kept[i], "/"), strings.Count(kept[j], "/")
		if di != dj {
			return di < dj
		}
		return kept[i] < kept[j]
	})
	return kept, nil
}

func isSkipped(dir string) bool {
	for _, part := range strings.Split(dir, "/") {
		if skippedDirs[part] || skippedExts[path.Ext(part)] {
			return true
		}
	}
	return false
}

// FindProjectFile returns the shallowest project.pbxproj under root.
func FindProjectFile(fs afero.Fs, root string) (string, error) {
	matches, err := glob(fs, root, projectPattern, 2)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%s: %w", root, ErrProjectNotFound)
	}
	return filepath.Join(root, filepath.FromSlash(matches[0])), nil
}

// FindInfoPlist returns the shallowest Info.plist under root, ignoring
// project bundles, dependencies and build output.
func FindInfoPlist(fs afero.Fs, root string) (string, error) {
	matches, err := glob(fs, root, infoPlistPattern, 1)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%s: %w", root, ErrInfoPlistNotFound)
	}
	return filepath.Join(root, filepath.FromSlash(matches[0])), nil
}

// DetectProjectName returns "SampleApp" for
// ".../SampleApp.xcodeproj/project.pbxproj".
func DetectProjectName(projectFile string) string {
	bundle := filepath.Base(filepath.Dir(projectFile))
	return strings.TrimSuffix(bundle, filepath.Ext(bundle))
}

// ProjectRoot is the directory holding the .xcodeproj bundle.
func ProjectRoot(projectFile string) string {
	return filepath.Dir(filepath.Dir(projectFile))
}
