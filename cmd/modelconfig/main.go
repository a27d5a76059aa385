package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	modelconfig "github.com/0xalexb/hjarta-modelconfig"
	"github.com/0xalexb/hjarta-modelconfig/logging"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "modelconfig",
		Short: "Read values from a model configuration file",
		Long: "Read top-level values from a model's YAML configuration file.\n\n" +
			"The file is taken from $" + modelconfig.EnvPathVariable + " when set, otherwise from --config.",
		Version: modelconfig.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "",
		"Development config path, used when $"+modelconfig.EnvPathVariable+" is not set")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "text", "Log format (text|json)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		logConfig := logging.LoggerConfig{Level: flags.logLevel, Format: flags.logFormat}

		err := logConfig.Validate()
		if err != nil {
			return fmt.Errorf("invalid logging flags: %w", err)
		}

		slog.SetDefault(logging.NewLogger(logConfig, c.ErrOrStderr()))

		return nil
	}

	cmd.AddCommand(newCmdGet(&flags))
	cmd.AddCommand(newCmdDump(&flags))
	cmd.AddCommand(newCmdServe(&flags))
	cmd.AddCommand(newCmdVersion())

	return cmd
}

// openConfig resolves the configuration the same way a host-driven process would:
// the environment handoff first, the --config flag second.
func openConfig(flags *globalFlags) (*modelconfig.ModelConfig, error) {
	cfg, err := modelconfig.New(modelconfig.EnvPath(modelconfig.EnvPathVariable), flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("opening model config: %w", err)
	}

	return cfg, nil
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())

	err := root.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
