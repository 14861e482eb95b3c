// Package scaffold creates the source directories an app is expected to
// have and registers a folder group for each one it creates.
package scaffold

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/soapywu/pbxpatch/internal/config"
	"github.com/soapywu/pbxpatch/pbxproj"
)

// Dir is one required directory, relative to the project root.
type Dir struct {
	Name string
	Path string
}

// Layout lists the required directories. Paths are slash separated and
// relative to Root, the directory holding the .xcodeproj bundle.
type Layout struct {
	Root     string
	View     string
	Layouts  string
	Styles   string
	Bindings string
	Core     string
	UI       string
	Base     string
}

// DefaultLayout puts every directory under sourceDir.
func DefaultLayout(root, sourceDir string) Layout {
	return Layout{
		Root:     root,
		View:     path.Join(sourceDir, "View"),
		Layouts:  path.Join(sourceDir, "Layouts"),
		Styles:   path.Join(sourceDir, "Styles"),
		Bindings: path.Join(sourceDir, "Bindings"),
		Core:     path.Join(sourceDir, "Core"),
		UI:       path.Join(sourceDir, "Core", "UI"),
		Base:     path.Join(sourceDir, "Core", "Base"),
	}
}

// WithOverrides replaces the directories set in cfg. Overrides are relative
// to sourceDir.
func (l Layout) WithOverrides(sourceDir string, cfg config.LayoutConfig) Layout {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = path.Join(sourceDir, filepath.ToSlash(v))
		}
	}
	set(&l.View, cfg.View)
	set(&l.Layouts, cfg.Layouts)
	set(&l.Styles, cfg.Styles)
	set(&l.Bindings, cfg.Bindings)
	set(&l.Core, cfg.Core)
	set(&l.UI, cfg.UI)
	set(&l.Base, cfg.Base)
	return l
}

// Dirs returns the directories parents first, so a nested directory finds
// the group of its parent.
func (l Layout) Dirs() []Dir {
	dirs := []Dir{
		{"View", l.View},
		{"Layouts", l.Layouts},
		{"Styles", l.Styles},
		{"Bindings", l.Bindings},
		{"Core", l.Core},
		{"UI", l.UI},
		{"Base", l.Base},
	}
	for i := range dirs {
		dirs[i].Name = path.Base(dirs[i].Path)
	}
	return dirs
}

// FolderGroupAdder is the part of *pbxproj.PbxProject the scaffolder needs.
type FolderGroupAdder interface {
	AddFolderGroup(name, relativePath string) (pbxproj.Outcome, error)
}

type Scaffolder struct {
	fs     afero.Fs
	logger *zap.Logger
}

func New(fs afero.Fs, logger *zap.Logger) *Scaffolder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scaffolder{fs: fs, logger: logger}
}

// Missing returns the layout directories that do not exist yet.
func (s *Scaffolder) Missing(l Layout) ([]Dir, error) {
	var missing []Dir
	for _, d := range l.Dirs() {
		full := filepath.Join(l.Root, filepath.FromSlash(d.Path))
		exists, err := afero.DirExists(s.fs, full)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", full, err)
		}
		if exists {
			s.logger.Debug("directory exists", zap.String("path", full))
			continue
		}
		missing = append(missing, d)
	}
	return missing, nil
}

// Create makes the missing directories and adds a folder group for each.
// It returns the directories it created.
func (s *Scaffolder) Create(project FolderGroupAdder, l Layout) ([]Dir, error) {
	missing, err := s.Missing(l)
	if err != nil {
		return nil, err
	}
	if len(missing) == 0 {
		s.logger.Info("all directories already exist")
		return nil, nil
	}
	for _, d := range missing {
		full := filepath.Join(l.Root, filepath.FromSlash(d.Path))
		if err := s.fs.MkdirAll(full, os.ModePerm); err != nil {
			return nil, &pbxproj.IOError{Op: "mkdir", Path: full, Err: err}
		}
		s.logger.Info("created directory", zap.String("path", full))
	}
	for _, d := range missing {
		outcome, err := project.AddFolderGroup(d.Name, d.Path)
		if err != nil {
			return missing, fmt.Errorf("folder group %s: %w", d.Name, err)
		}
		s.logger.Info("folder group", zap.String("name", d.Name), zap.Stringer("outcome", outcome))
	}
	return missing, nil
}
