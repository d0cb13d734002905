package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gork-labs/azwire/pkg/models"
)

func newModelsCommand(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "models [NAME...]",
		Short: "List catalog models with their unions and enums",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = models.Names()
			}

			descs := make([]models.Description, 0, len(names))
			for _, name := range names {
				d, err := models.Describe(name)
				if err != nil {
					return err
				}
				descs = append(descs, d)
			}
			opts.log.WithField("count", len(descs)).Debug("described models")

			if output == "text" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), renderDescriptions(descs))
				return err
			}

			format, err := normalizeFormat(output)
			if err != nil {
				return err
			}
			data, err := json.Marshal(descs)
			if err != nil {
				return err
			}
			out, err := fromJSON(data, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&output, "output", "text", "Output format: text, json or yaml")
	return cmd
}

func renderDescriptions(descs []models.Description) string {
	var b strings.Builder
	for _, d := range descs {
		fmt.Fprintf(&b, "%s\n", d.Name)
		if d.Doc != "" {
			fmt.Fprintf(&b, "  %s\n", d.Doc)
		}
		for _, u := range d.Unions {
			fmt.Fprintf(&b, "  union %s (%s): %s\n", u.Name, u.Discriminator, strings.Join(u.Values, ", "))
		}
		for _, e := range d.Enums {
			fmt.Fprintf(&b, "  enum %s: %s", e.Name, strings.Join(enumValues(e), ", "))
			if e.Default != "" {
				fmt.Fprintf(&b, " (default %s)", e.Default)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// enumValues labels each wire value with its symbolic name where the two differ.
func enumValues(e models.EnumInfo) []string {
	out := make([]string, len(e.Values))
	for i, v := range e.Values {
		out[i] = v
		if i < len(e.Symbols) && e.Symbols[i] != v {
			out[i] = fmt.Sprintf("%s (%s)", v, e.Symbols[i])
		}
	}
	return out
}
