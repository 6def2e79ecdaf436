// Package cli implements the entity-annotator command line.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"entity-annotator/internal/config"
	"entity-annotator/internal/logging"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	envFile    string
	verbose    bool
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "entity-annotator",
		Short: "Validate entity annotations and derive template attributes",
		Long: `entity-annotator reads entity descriptions produced by a domain-model parser,
validates their annotations and writes back the derived attributes
(column names, generation strategy, feature flags) for template rendering.

Exit Codes:
  0  - Success
  1  - Validation failed or a file could not be processed`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "Path to the annotator config file")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Dotenv file with ANNOTATOR_* overrides")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	root.AddCommand(
		newAnnotateCommand(opts),
		newReservedCommand(opts),
		newRulesCommand(),
	)

	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	root := NewRootCommand()

	err := root.Execute()
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	}

	return err
}

// loadConfig reads the config file, then the dotenv file, then the process
// environment; later sources win.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, err
	}

	if o.envFile != "" {
		if err := cfg.ApplyEnvFile(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg.ApplyEnv(os.LookupEnv)

	return cfg, nil
}

func (o *globalOptions) logger(cmd *cobra.Command) logging.Logger {
	return logging.NewConsoleLogger(cmd.ErrOrStderr(), o.verbose)
}
