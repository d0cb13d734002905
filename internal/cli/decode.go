package cli

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gork-labs/azwire/pkg/models"
	"github.com/gork-labs/azwire/pkg/openenum"
)

// DecodeConfig holds the flags of the decode command.
type DecodeConfig struct {
	Model  string
	File   string
	Input  string
	Output string
	Strict bool
}

func newDecodeCommand(opts *rootOptions) *cobra.Command {
	var config DecodeConfig

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a payload into a catalog model and print its wire form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDecode(cmd, opts, &config)
		},
	}

	cmd.Flags().StringVar(&config.Model, "model", "", "Catalog model name, e.g. workloads.SAPVirtualInstance")
	cmd.Flags().StringVar(&config.File, "file", "-", "Path to the payload or '-' for stdin")
	cmd.Flags().StringVar(&config.Input, "input", "", "Input format: json or yaml (default from the file extension)")
	cmd.Flags().StringVar(&config.Output, "output", formatJSON, "Output format: json or yaml")
	cmd.Flags().BoolVar(&config.Strict, "strict", false, "Fail on enum values outside the known set")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func runDecode(cmd *cobra.Command, opts *rootOptions, config *DecodeConfig) error {
	input := config.Input
	if input == "" {
		input = formatFromPath(config.File)
	}
	input, err := normalizeFormat(input)
	if err != nil {
		return err
	}
	output, err := normalizeFormat(config.Output)
	if err != nil {
		return err
	}

	raw, err := readInput(config.File, cmd.InOrStdin())
	if err != nil {
		return err
	}
	data, err := toJSON(raw, input)
	if err != nil {
		return err
	}

	v, err := models.Decode(config.Model, data)
	if err != nil {
		return err
	}

	findings := openenum.Scan(v)
	for _, f := range findings {
		opts.log.WithFields(logrus.Fields{
			"path":  f.Path,
			"type":  f.Type,
			"value": f.Value,
		}).Warn("unknown enum value")
	}
	if config.Strict && len(findings) > 0 {
		return fmt.Errorf("%d unknown enum value(s), first %s", len(findings), findings[0])
	}

	encoded, err := json.Marshal(v)
	if err != nil {
		return err
	}
	out, err := fromJSON(encoded, output)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
