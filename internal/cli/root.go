// Package cli provides the azwire command-line interface.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gork-labs/azwire/internal/logging"
)

// Execute creates and runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// rootOptions carries the settings resolved before any subcommand runs.
type rootOptions struct {
	configPath string
	logLevel   string

	cfg Config
	log *logrus.Entry
}

// NewRootCommand builds the azwire command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "azwire",
		Short:        "Decode, list and generate Azure wire models",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigFile, "Path to .azwire.yml config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	cmd.AddCommand(
		newModelsCommand(opts),
		newDecodeCommand(opts),
		newListCommand(opts),
		newGenerateCommand(opts),
	)
	return cmd
}

func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := LoadConfig(o.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}

	log, err := logging.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.log = log
	return nil
}
