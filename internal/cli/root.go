package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"transfuse/internal/config"
	"transfuse/internal/logging"
	"transfuse/internal/version"
)

const longDesc = `The transfuse command line interface.

Configuration is read from the file given with --config; without it the
built-in defaults apply.`

type rootOptions struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

func NewRootCmd(name string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           name,
		Short:         fmt.Sprintf("%s %s", name, version.Version()),
		Long:          fmt.Sprintf("%s %s\n\n%s", name, version.Version(), longDesc),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version(),
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a transfuse.yaml config file")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable verbose logging")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		cfg, err := config.Default()
		if err != nil {
			return fmt.Errorf("failed to load default config: %w", err)
		}
		if opts.configPath != "" {
			cfg, err = config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
		}
		opts.cfg = cfg

		level, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			return err
		}
		if opts.verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(logging.NewTextHandler(cc.ErrOrStderr(), level)))
		slog.Debug("config loaded", "path", opts.configPath, "output", cfg.Output)

		return nil
	}

	cmd.AddCommand(newVersionCmd(opts))

	return cmd
}
