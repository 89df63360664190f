package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/agentfile-dev/agentfile/internal/branding"
	"github.com/agentfile-dev/agentfile/internal/config"
	"github.com/agentfile-dev/agentfile/internal/setup"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var setupOpts setup.Options

func init() {
	f := rootCmd.Flags()
	f.StringVar(&setupOpts.Dir, "dir", "", "Project directory (defaults to the current directory)")
	f.StringVar(&setupOpts.Name, "name", "", "Project name (skips the name prompt)")
	f.StringVar(&setupOpts.Build, "build", "", "Build command (skips the build prompt)")
	f.StringVar(&setupOpts.Test, "test", "", "Test command (skips the test prompt)")
	f.BoolVarP(&setupOpts.AssumeYes, "yes", "y", false, "Accept all defaults without prompting")
	f.StringVar(&setupOpts.OnExists, "on-exists", "", "What to do when "+branding.OutputFile()+" exists: overwrite, merge, or cancel")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` writes a ` + branding.OutputFile() + ` with project-specific build and
test commands into the current directory, and aliases it as ` + branding.AliasFile() + `
via a symlink. Project type and commands are detected from marker files and
confirmed interactively.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		setupOpts.In = cmd.InOrStdin()
		setupOpts.Out = cmd.OutOrStdout()
		if setupOpts.OnExists == "" {
			setupOpts.OnExists = config.Get(config.KeyOnExists)
		}

		result, err := setup.Run(setupOpts)
		if errors.Is(err, setup.ErrCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}

		switch result.Action {
		case setup.ActionMerged:
			fmt.Fprintf(cmd.OutOrStdout(), "\nMerged %d section(s) into %s.\n",
				len(result.AddedSections), result.Path)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "\nWrote %s for %q.\n", result.Path, result.Profile.Name)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Done.")
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
