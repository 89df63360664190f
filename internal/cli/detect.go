package cli

import (
	"fmt"

	"github.com/agentfile-dev/agentfile/internal/config"
	"github.com/agentfile-dev/agentfile/internal/detect"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var detectDir string

func init() {
	detectCmd.Flags().StringVar(&detectDir, "dir", "", "Project directory (defaults to the current directory)")
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Print the detected project profile without writing anything",
	Long: `Probe the project directory for marker files and print the profile
(type, name, build and test commands) that a setup run would start from.
No files are written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := detectDir
		if dir == "" {
			dir = "."
		}

		det, err := detect.Type(dir)
		if err != nil {
			return err
		}

		out := struct {
			Name   string `yaml:"name"`
			Type   string `yaml:"type"`
			Marker string `yaml:"marker,omitempty"`
			Build  string `yaml:"build"`
			Test   string `yaml:"test"`
		}{
			Name:   config.Override(config.KeyName, detect.Name(dir)),
			Type:   det.Type,
			Marker: det.Marker,
			Build:  config.Override(config.KeyBuild, det.Build),
			Test:   config.Override(config.KeyTest, det.Test),
		}

		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshaling profile: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}
