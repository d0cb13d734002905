package cli

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gork-labs/azwire/pkg/armclient"
	"github.com/gork-labs/azwire/pkg/models"
	"github.com/gork-labs/azwire/pkg/openenum"
	"github.com/gork-labs/azwire/pkg/pager"
)

const defaultEndpoint = "https://management.azure.com"

// ListConfig holds the flags of the list command.
type ListConfig struct {
	Model      string
	Path       string
	Endpoint   string
	APIVersion string
	Query      map[string]string
}

func newListCommand(opts *rootOptions) *cobra.Command {
	var config ListConfig

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Walk a list endpoint and print each item as a JSON line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("endpoint") {
				config.Endpoint = opts.cfg.Endpoint
			}
			if !cmd.Flags().Changed("api-version") {
				config.APIVersion = opts.cfg.APIVersion
			}
			return runList(cmd, opts.log, &config)
		},
	}

	cmd.Flags().StringVar(&config.Model, "model", "", "Catalog model of the listed items")
	cmd.Flags().StringVar(&config.Path, "path", "", "List operation path, relative to the endpoint")
	cmd.Flags().StringVar(&config.Endpoint, "endpoint", "", "Service endpoint (default "+defaultEndpoint+")")
	cmd.Flags().StringVar(&config.APIVersion, "api-version", "", "api-version query parameter")
	cmd.Flags().StringToStringVar(&config.Query, "query", nil, "Extra query parameters for the first request, e.g. $top=10")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func runList(cmd *cobra.Command, log *logrus.Entry, config *ListConfig) error {
	if _, err := models.Lookup(config.Model); err != nil {
		return err
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	client, err := armclient.New(endpoint, &policy.ClientOptions{APIVersion: config.APIVersion}, log)
	if err != nil {
		return err
	}

	query := url.Values{}
	for k, v := range config.Query {
		query.Set(k, v)
	}

	p := armclient.NewListPager[armclient.RawPage](client, config.Path, armclient.ListOptions{Query: query})

	out := cmd.OutOrStdout()
	pages, items := 0, 0
	err = pager.Walk(cmd.Context(), p, func(page armclient.RawPage) error {
		pages++
		for _, raw := range page.Value {
			v, err := models.Decode(config.Model, raw)
			if err != nil {
				return fmt.Errorf("page %d item %d: %w", pages, items, err)
			}
			for _, f := range openenum.Scan(v) {
				log.WithFields(logrus.Fields{"item": items, "path": f.Path, "value": f.Value}).Warn("unknown enum value")
			}
			line, err := json.Marshal(v)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "%s\n", line); err != nil {
				return err
			}
			items++
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"pages": pages, "items": items}).Info("list complete")
	return nil
}
