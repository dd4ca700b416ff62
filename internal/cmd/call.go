package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Wy2160640/ensemblrest"
	"github.com/Wy2160640/ensemblrest/internal/observability"
	"github.com/Wy2160640/ensemblrest/internal/output"
)

var callCmd = &cobra.Command{
	Use:   "call <operation> [key=value ...]",
	Short: "Call a registry operation",
	Long: `Call one registry operation by name.

Arguments after the operation name are params in key=value form. Keys that
match URL template placeholders fill the path; the rest are sent as query
parameters (GET) or JSON body fields (POST). Repeating a key sends a list.
--body supplies a JSON object merged underneath the key=value params.`,
	Example: `  ensemblrest call getLookupById id=ENSG00000157764 expand=1
  ensemblrest call getSequenceById id=ENST00000288602 type=cdna --output-format raw
  ensemblrest call getLookupByMultipleIds --body '{"ids":["ENSG00000157764","ENSG00000248378"]}'
  ensemblrest call getInfoPing --genomes`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().String("body", "", "JSON object merged into the params")
	callCmd.Flags().Bool("genomes", false, "use the Ensembl Genomes service")
	callCmd.Flags().String("output-format", "json", "output format: json, table, markdown, raw")
	callCmd.Flags().String("out", "", "write output to file (default stdout)")

	_ = viper.BindPFlag("client.genomes", callCmd.Flags().Lookup("genomes"))
}

func runCall(cmd *cobra.Command, args []string) error {
	body, err := cmd.Flags().GetString("body")
	if err != nil {
		return err
	}
	format, err := resolveOutputFormat(cmd, output.FormatJSON)
	if err != nil {
		return err
	}
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	params, err := parseParams(args[1:], body)
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

	sink, err := openSink(outPath, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = sink.close() }()

	return executeCall(cmd.Context(), client, args[0], params, output.NewFormatter(format), sink.writer)
}

// executeCall dispatches one operation and writes the formatted payload to w.
func executeCall(ctx context.Context, client *ensemblrest.Client, operation string, params ensemblrest.Params, formatter output.Formatter, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	payload, err := client.Call(ctx, operation, params)
	if err != nil {
		return err
	}

	if logger := observability.CLILogger; logger != nil {
		if last := client.LastResponse(); last != nil {
			logger.Debug("Operation completed",
				zap.String("operation", operation),
				zap.String("request_id", last.RequestID),
				zap.Int("status", last.StatusCode),
				zap.Duration("duration", last.Duration))
		}
	}

	rendered, err := formatter.FormatPayload(payload)
	if err != nil {
		return err
	}
	sink := &outputSink{writer: w}
	return sink.writeRendered(rendered)
}

// parseParams turns key=value arguments and an optional JSON object into
// params. Repeated keys collect into a list; key=value entries replace body
// fields of the same name.
func parseParams(args []string, body string) (ensemblrest.Params, error) {
	params := ensemblrest.Params{}

	if strings.TrimSpace(body) != "" {
		dec := json.NewDecoder(strings.NewReader(body))
		dec.UseNumber()
		if err := dec.Decode(&params); err != nil {
			return nil, fmt.Errorf("--body must be a JSON object: %w", err)
		}
		if dec.More() {
			return nil, fmt.Errorf("--body must be a single JSON object")
		}
		if params == nil {
			return nil, fmt.Errorf("--body must be a JSON object, got null")
		}
	}

	values := make(map[string][]string)
	var order []string
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q: expected key=value", arg)
		}
		if _, seen := values[key]; !seen {
			order = append(order, key)
		}
		values[key] = append(values[key], value)
	}

	for _, key := range order {
		if list := values[key]; len(list) == 1 {
			params[key] = list[0]
		} else {
			params[key] = list
		}
	}
	return params, nil
}
