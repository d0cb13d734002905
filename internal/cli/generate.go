package cli

import (
	"github.com/spf13/cobra"

	"github.com/gork-labs/azwire/internal/generator"
)

// GenerateConfig holds the flags of the generate command.
type GenerateConfig struct {
	Definitions string
	Output      string
}

func newGenerateCommand(opts *rootOptions) *cobra.Command {
	var config GenerateConfig

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate enum and union source from a YAML definitions file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			defs, err := generator.LoadDefinitions(config.Definitions)
			if err != nil {
				return err
			}
			src, err := generator.Generate(defs)
			if err != nil {
				return err
			}
			opts.log.WithField("package", defs.Package).Debug("generated source")
			return writeOutput(config.Output, src, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&config.Definitions, "definitions", "", "Path to the YAML definitions file")
	cmd.Flags().StringVar(&config.Output, "output", "-", "Path to output file or '-' for stdout")
	_ = cmd.MarkFlagRequired("definitions")

	return cmd
}
