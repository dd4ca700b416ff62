// Command ensemblrest-opgen writes the named operation wrappers of the
// ensemblrest client from the embedded endpoint registry.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Wy2160640/ensemblrest/internal/opgen"
	"github.com/Wy2160640/ensemblrest/registry"
)

func main() {
	var (
		out string
		pkg string
	)

	cmd := &cobra.Command{
		Use:           "ensemblrest-opgen",
		Short:         "Generate named operation wrappers from the endpoint registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := registry.LoadDefaults()
			if err != nil {
				return err
			}
			src, err := opgen.Render(reg, opgen.Options{Package: pkg, Command: "ensemblrest-opgen"})
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = os.Stdout.Write(src)
				return err
			}
			return os.WriteFile(out, src, 0o644) // #nosec G306 -- generated source file
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "operations_gen.go", "output file (- for stdout)")
	cmd.Flags().StringVar(&pkg, "package", "ensemblrest", "package name of the generated file")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ensemblrest-opgen: %v\n", err)
		os.Exit(1)
	}
}
