package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// configCommand creates the config command, which prints the effective
// configuration as TOML.
func (c *CLI) configCommand() *cobra.Command {
	var configPath, output string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as TOML.

Without --config this prints the defaults, which makes a good starting
point for a config file:

  sunburst config -o chart.toml
  sunburst render data.csv -c chart.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := baseOptions(configPath)
			if err != nil {
				return err
			}
			var out io.WriteCloser = nopCloser{cmd.OutOrStdout()}
			if output != "" && output != "-" {
				if out, err = openOutput(output); err != nil {
					return err
				}
			}
			if err := pipeline.WriteConfig(out, opts); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
			if output != "" && output != "-" {
				c.Logger.Infof("Wrote config to %s", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file to resolve")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
