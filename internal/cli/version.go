package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"transfuse/internal/config"
	"transfuse/internal/version"
)

// newVersionCmd returns the version command.
func newVersionCmd(root *rootOptions) *cobra.Command {
	var (
		short  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version of the transfuse CLI",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			if short {
				fmt.Fprintln(cc.OutOrStdout(), version.Version())
				return nil
			}

			format := output
			if format == "" {
				format = root.cfg.Output
			}
			switch format {
			case config.OutputYAML:
				return writeYAML(cc.OutOrStdout(), version.Get())
			case config.OutputText:
				printVersion(cc.OutOrStdout(), cc.Root().Name(), version.Get())
				return nil
			}
			return fmt.Errorf("unknown output format %q", format)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format (text, yaml)")
	cmd.MarkFlagsMutuallyExclusive("short", "output")

	return cmd
}

func printVersion(w io.Writer, name string, info version.BuildInfo) {
	fmt.Fprintf(w, "%s %s\n", name, info.Version)
	fmt.Fprintf(w, "  Build time: %s\n", info.BuildTime)
	fmt.Fprintf(w, "  Git commit: %s\n", info.GitCommit)
	fmt.Fprintf(w, "  Go version: %s\n", info.GoVersion)
}

func writeYAML(w io.Writer, info version.BuildInfo) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(info); err != nil {
		return fmt.Errorf("failed to encode version: %w", err)
	}
	return enc.Close()
}
