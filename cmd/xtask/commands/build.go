package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xtask/internal/app"
	"go.trai.ch/xtask/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var opts app.RunOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the configured target and profile",
		Long: "Runs `<tool> build --target <target> --profile <profile>` once and prints its exit code\n" +
			"and diagnostics. Flags override values from the configuration file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			opts.ConfigPath = configPath
			return c.app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Target, "target", "t", "", "Target triple (default \""+domain.DefaultTarget+"\")")
	flags.StringVarP(&opts.Profile, "profile", "p", "", "Build profile (default \""+domain.DefaultProfile+"\")")
	flags.StringVar(&opts.Tool, "tool", "", "Build tool executable (default \""+domain.DefaultTool+"\")")
	flags.StringVar(&opts.Package, "package", "", "Package to build")
	flags.StringSliceVar(&opts.Features, "features", nil, "Features to enable")
	flags.BoolVar(&opts.Strict, "strict", false, "Exit with an error when the tool exits with a nonzero code")

	return cmd
}
