package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Wy2160640/ensemblrest/internal/output"
	"github.com/Wy2160640/ensemblrest/registry"
)

var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "List registry operations",
	Long: `List the operations of the endpoint registry with their HTTP method,
URL template and mandatory params.`,
	Example: `  ensemblrest endpoints --filter lookup
  ensemblrest endpoints --method POST --output-format json`,
	Args: cobra.NoArgs,
	RunE: runEndpoints,
}

func init() {
	rootCmd.AddCommand(endpointsCmd)

	endpointsCmd.Flags().String("filter", "", "case-insensitive substring matched against name and URL")
	endpointsCmd.Flags().String("method", "", "only list operations using this HTTP method (GET, POST)")
	endpointsCmd.Flags().String("output-format", "table", "output format: table, json, markdown, raw")
	endpointsCmd.Flags().String("out", "", "write output to file (default stdout)")
}

func runEndpoints(cmd *cobra.Command, args []string) error {
	filter, err := cmd.Flags().GetString("filter")
	if err != nil {
		return err
	}
	method, err := cmd.Flags().GetString("method")
	if err != nil {
		return err
	}
	format, err := resolveOutputFormat(cmd, output.FormatTable)
	if err != nil {
		return err
	}
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	endpoints := filterEndpoints(client.Registry().List(), filter, method)
	rendered, err := output.NewFormatter(format).FormatEndpoints(endpoints)
	if err != nil {
		return err
	}

	sink, err := openSink(outPath, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = sink.close() }()
	return sink.writeRendered(rendered)
}

func filterEndpoints(endpoints []*registry.Endpoint, filter, method string) []*registry.Endpoint {
	filter = strings.ToLower(strings.TrimSpace(filter))
	method = strings.ToUpper(strings.TrimSpace(method))

	matched := make([]*registry.Endpoint, 0, len(endpoints))
	for _, ep := range endpoints {
		if method != "" && string(ep.Method) != method {
			continue
		}
		if filter != "" &&
			!strings.Contains(strings.ToLower(ep.Name), filter) &&
			!strings.Contains(strings.ToLower(ep.URL), filter) {
			continue
		}
		matched = append(matched, ep)
	}
	return matched
}
