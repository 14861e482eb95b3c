package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/soapywu/pbxpatch/internal/finder"
	"github.com/soapywu/pbxpatch/internal/plist"
	"github.com/soapywu/pbxpatch/internal/setup"
	"github.com/soapywu/pbxpatch/pbxproj"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the project file is structurally well formed",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.openProject()
			if err != nil {
				return err
			}
			report, err := project.Validate()
			if err != nil {
				return err
			}
			for _, v := range report.Violations {
				fmt.Fprintln(a.out, v.String())
			}
			if !report.OK() {
				return report.Err("validate")
			}
			fmt.Fprintf(a.out, "%s: ok\n", project.FilePath())
			return nil
		},
	}
}

func newPackageCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Manage Swift package dependencies",
	}
	var minVersion, target string
	add := &cobra.Command{
		Use:   "add <name> <repository-url>",
		Short: "Add a remote Swift package and link its product to a target",
		Args:  exactArgs("name", "repository-url"),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.openProject()
			if err != nil {
				return err
			}
			outcome, err := project.AddSwiftPackage(pbxproj.SwiftPackage{
				Name:           args[0],
				RepositoryURL:  args[1],
				MinimumVersion: minVersion,
				Target:         target,
			})
			if err != nil {
				return err
			}
			a.report("package "+args[0], outcome)
			return nil
		},
	}
	add.Flags().StringVar(&minVersion, "min-version", "", "Minimum version, up to the next major version (required)")
	add.Flags().StringVarP(&target, "target", "t", "", "Target linking the product (default: first target)")
	_ = add.MarkFlagRequired("min-version")
	cmd.AddCommand(add)
	return cmd
}

func newGroupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage folder groups",
	}
	var relPath string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a folder group under the group of its parent directory",
		Args:  exactArgs("name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.openProject()
			if err != nil {
				return err
			}
			path := relPath
			if path == "" {
				path = args[0]
			}
			outcome, err := project.AddFolderGroup(args[0], path)
			if err != nil {
				return err
			}
			a.report("group "+args[0], outcome)
			return nil
		},
	}
	add.Flags().StringVar(&relPath, "path", "", "Directory path relative to the project root (default: <name>)")
	cmd.AddCommand(add)
	return cmd
}

func newFileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Manage file references",
	}
	var opts pbxproj.FileOptions
	add := &cobra.Command{
		Use:   "add <path>",
		Short: "Add a file to a group and to the build phase matching its type",
		Args:  exactArgs("path"),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.openProject()
			if err != nil {
				return err
			}
			outcome, err := project.AddFile(args[0], opts)
			if err != nil {
				return err
			}
			a.report("file "+args[0], outcome)
			return nil
		},
	}
	add.Flags().StringVarP(&opts.Group, "group", "g", "", "Group to list the file in (default: main group)")
	add.Flags().StringVarP(&opts.Target, "target", "t", "", "Target whose build phase gets the file (default: first target)")
	add.Flags().StringVar(&opts.LastKnownFileType, "type", "", "lastKnownFileType (default: from the extension)")
	add.Flags().StringVar(&opts.SourceTree, "source-tree", "", "sourceTree (default: from the file type)")
	cmd.AddCommand(add)
	return cmd
}

func newPhaseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Manage build phases",
	}
	var script pbxproj.ShellScript
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Append a Run Script build phase to a target",
		Args:  exactArgs("name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.openProject()
			if err != nil {
				return err
			}
			script.Name = args[0]
			outcome, err := project.AddShellScriptBuildPhase(script)
			if err != nil {
				return err
			}
			a.report("build phase "+args[0], outcome)
			return nil
		},
	}
	add.Flags().StringVar(&script.Script, "script", "", "Script body")
	add.Flags().StringVar(&script.ShellPath, "shell", "", "Shell (default: /bin/sh)")
	add.Flags().StringSliceVar(&script.InputPaths, "input", nil, "Input paths")
	add.Flags().StringSliceVar(&script.OutputPaths, "output", nil, "Output paths")
	add.Flags().StringVarP(&script.Target, "target", "t", "", "Target (default: first target)")
	cmd.AddCommand(add)
	return cmd
}

func newSetupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run the project setup flows",
	}
	run := func(flow func(*setup.Setup) (setup.Result, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			path, err := a.projectFile()
			if err != nil {
				return err
			}
			s, err := setup.New(a.fs, path, a.cfg, a.logger)
			if err != nil {
				return err
			}
			result, err := flow(s)
			for _, step := range result.Steps {
				a.report(step.Name, step.Outcome)
			}
			return err
		}
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "libraries",
			Short: "Add SwiftJsonUI, SimpleApiNetwork when use_network is set, and the configured packages",
			Args:  exactArgs(),
			RunE:  run((*setup.Setup).Libraries),
		},
		&cobra.Command{
			Use:   "directories",
			Short: "Create the source directories and their groups, add SwiftJsonUI and clean up Info.plist",
			Args:  exactArgs(),
			RunE:  run((*setup.Setup).Directories),
		},
	)
	return cmd
}

func newPlistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plist",
		Short: "Edit Info.plist",
	}
	var plistPath string
	strip := &cobra.Command{
		Use:   "strip-storyboard",
		Short: "Remove UISceneStoryboardFile from Info.plist",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := plistPath
			if path == "" {
				project, err := a.projectFile()
				if err != nil {
					return err
				}
				if path, err = finder.FindInfoPlist(a.fs, finder.ProjectRoot(project)); err != nil {
					return err
				}
			}
			outcome, err := plist.StripStoryboard(a.fs, path, a.logger)
			if err != nil {
				return err
			}
			a.report(path, outcome)
			return nil
		},
	}
	strip.Flags().StringVar(&plistPath, "plist", "", "Path to Info.plist (default: search next to the project)")
	cmd.AddCommand(strip)
	return cmd
}

// Build-time variables set via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pbxpatch %s (%s) %s/%s\n", version, commit, runtime.GOOS, runtime.GOARCH)
		},
	}
}
