// Package setup runs the multi step flows: adding the libraries an app
// depends on, and laying out its directories. Every step is its own
// transaction, so a failing step leaves the steps before it in place.
package setup

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/soapywu/pbxpatch/internal/config"
	"github.com/soapywu/pbxpatch/internal/finder"
	"github.com/soapywu/pbxpatch/internal/plist"
	"github.com/soapywu/pbxpatch/internal/scaffold"
	"github.com/soapywu/pbxpatch/pbxproj"
)

var (
	SwiftJsonUI = pbxproj.SwiftPackage{
		Name:           "SwiftJsonUI",
		RepositoryURL:  "https://github.com/Tai-Kimura/SwiftJsonUI",
		MinimumVersion: "5.3.0",
	}
	SimpleApiNetwork = pbxproj.SwiftPackage{
		Name:           "SimpleApiNetwork",
		RepositoryURL:  "https://github.com/Tai-Kimura/SimpleApiNetwork",
		MinimumVersion: "2.1.8",
	}
)

// Step records what one step did.
type Step struct {
	Name    string
	Outcome pbxproj.Outcome
}

type Result struct {
	Steps []Step
}

func (r *Result) add(name string, outcome pbxproj.Outcome) {
	r.Steps = append(r.Steps, Step{Name: name, Outcome: outcome})
}

type Setup struct {
	fs      afero.Fs
	cfg     *config.Config
	project *pbxproj.PbxProject
	logger  *zap.Logger
}

func New(fs afero.Fs, projectFile string, cfg *config.Config, logger *zap.Logger) (*Setup, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	project, err := pbxproj.Open(projectFile, pbxproj.WithFs(fs), pbxproj.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &Setup{fs: fs, cfg: cfg, project: project, logger: logger}, nil
}

// Packages returns SwiftJsonUI, SimpleApiNetwork when the app uses the
// network, then the packages from the config file.
func (s *Setup) Packages() []pbxproj.SwiftPackage {
	pkgs := []pbxproj.SwiftPackage{SwiftJsonUI}
	if s.cfg.UseNetwork {
		pkgs = append(pkgs, SimpleApiNetwork)
	}
	for _, p := range s.cfg.Packages {
		pkgs = append(pkgs, pbxproj.SwiftPackage{Name: p.Name, RepositoryURL: p.URL, MinimumVersion: p.MinimumVersion})
	}
	for i := range pkgs {
		pkgs[i].Target = s.cfg.Target
	}
	return pkgs
}

func (s *Setup) addPackages(pkgs []pbxproj.SwiftPackage, result *Result) error {
	for _, pkg := range pkgs {
		outcome, err := s.project.AddSwiftPackage(pkg)
		result.add("package "+pkg.Name, outcome)
		if err != nil {
			return err
		}
	}
	return nil
}

// Libraries adds the Swift packages the app depends on.
func (s *Setup) Libraries() (Result, error) {
	var result Result
	err := s.addPackages(s.Packages(), &result)
	return result, err
}

// Layout is the directory layout for this project, with the overrides from
// the config file applied.
func (s *Setup) Layout() scaffold.Layout {
	projectFile := s.project.FilePath()
	sourceDir := s.cfg.SourceDirectory
	if sourceDir == "" {
		sourceDir = finder.DetectProjectName(projectFile)
	}
	return scaffold.DefaultLayout(finder.ProjectRoot(projectFile), sourceDir).
		WithOverrides(sourceDir, s.cfg.Layout)
}

// Directories creates the missing directories and their groups, adds
// SwiftJsonUI, adds the configured build phases and removes the storyboard
// reference from Info.plist.
func (s *Setup) Directories() (Result, error) {
	var result Result

	created, err := scaffold.New(s.fs, s.logger).Create(s.project, s.Layout())
	for _, d := range created {
		result.add("directory "+d.Path, pbxproj.Applied)
	}
	if err != nil {
		return result, err
	}

	if err := s.addPackages([]pbxproj.SwiftPackage{{
		Name:           SwiftJsonUI.Name,
		RepositoryURL:  SwiftJsonUI.RepositoryURL,
		MinimumVersion: SwiftJsonUI.MinimumVersion,
		Target:         s.cfg.Target,
	}}, &result); err != nil {
		return result, err
	}

	for _, b := range s.cfg.BuildPhases {
		outcome, err := s.project.AddShellScriptBuildPhase(pbxproj.ShellScript{
			Name:        b.Name,
			Script:      b.Script,
			ShellPath:   b.ShellPath,
			InputPaths:  b.InputPaths,
			OutputPaths: b.OutputPaths,
			Target:      s.cfg.Target,
		})
		result.add("build phase "+b.Name, outcome)
		if err != nil {
			return result, err
		}
	}

	outcome, err := s.stripStoryboard()
	result.add("info.plist", outcome)
	return result, err
}

func (s *Setup) stripStoryboard() (pbxproj.Outcome, error) {
	root := finder.ProjectRoot(s.project.FilePath())
	infoPlist, err := finder.FindInfoPlist(s.fs, root)
	if errors.Is(err, finder.ErrInfoPlistNotFound) {
		s.logger.Warn("no Info.plist found, storyboard reference not removed", zap.String("root", root))
		return pbxproj.Skipped, nil
	}
	if err != nil {
		return pbxproj.Failed, fmt.Errorf("find Info.plist: %w", err)
	}
	return plist.StripStoryboard(s.fs, infoPlist, s.logger)
}
