package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soapywu/pbxpatch/internal/config"
	"github.com/soapywu/pbxpatch/internal/dlogger"
	"github.com/soapywu/pbxpatch/internal/finder"
	"github.com/soapywu/pbxpatch/pbxproj"
)

const rootLong = `pbxpatch edits an Xcode project.pbxproj file in place without
reformatting it. Every change is made as one transaction: the file is backed
up, the new content is written once and validated, and the backup is put
back if anything goes wrong.

Exit Codes:
  0  - Success (applied, or already present)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration, or no project found
  20 - File could not be read, written or backed up
  21 - Project structure error, changes rolled back
  22 - Rollback failed, backup kept for manual recovery`

// app carries what every command needs once the persistent flags are
// parsed.
type app struct {
	fs  afero.Fs
	out io.Writer

	projectFlag string
	configDir   string
	logLevel    string

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand builds the command tree on top of fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	root := &cobra.Command{
		Use:           "pbxpatch",
		Short:         "Transactional editor for Xcode project files",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.out = cmd.OutOrStdout()
			return a.prepare(cmd)
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	flags := root.PersistentFlags()
	flags.StringVarP(&a.projectFlag, "project", "p", "", "Path to project.pbxproj (default: config project_file, then search the config directory)")
	flags.StringVarP(&a.configDir, "config", "c", ".", "Directory holding pbxpatch.yaml and .env")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error, none (default: config log_level)")

	root.AddCommand(
		newValidateCmd(a),
		newPackageCmd(a),
		newGroupCmd(a),
		newFileCmd(a),
		newPhaseCmd(a),
		newSetupCmd(a),
		newPlistCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs pbxpatch against the real filesystem.
func Execute() error {
	err := NewRootCommand(afero.NewOsFs()).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func (a *app) prepare(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.fs, a.configDir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = a.logLevel
	}
	logger, err := dlogger.GetLogger(level)
	if err != nil {
		return fmt.Errorf("%w: log level %q: %v", config.ErrInvalidConfig, level, err)
	}
	a.logger = logger
	return nil
}

// projectFile resolves the project from the flag, the config file, or a
// search under the config directory, in that order.
func (a *app) projectFile() (string, error) {
	if a.projectFlag != "" {
		return a.projectFlag, nil
	}
	if a.cfg.ProjectFile != "" {
		if filepath.IsAbs(a.cfg.ProjectFile) {
			return a.cfg.ProjectFile, nil
		}
		return filepath.Join(a.configDir, a.cfg.ProjectFile), nil
	}
	return finder.FindProjectFile(a.fs, a.configDir)
}

func (a *app) openProject() (*pbxproj.PbxProject, error) {
	path, err := a.projectFile()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("using project", zap.String("path", path))
	return pbxproj.Open(path, pbxproj.WithFs(a.fs), pbxproj.WithLogger(a.logger))
}

func (a *app) report(what string, outcome pbxproj.Outcome) {
	fmt.Fprintf(a.out, "%s: %s\n", what, outcome)
}

// exactArgs is cobra.ExactArgs with the missing names spelled out.
func exactArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != len(names) {
			return fmt.Errorf("%w: %s expects %d argument(s) (%v), received %d\n\nUsage: %s",
				ErrUsage, cmd.CommandPath(), len(names), names, len(args), cmd.UseLine())
		}
		return nil
	}
}
