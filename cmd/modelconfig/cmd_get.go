package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// newCmdGet returns a command that prints the value of a top-level key as YAML.
func newCmdGet(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value of a top-level key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := openConfig(flags)
			if err != nil {
				return err
			}

			value, err := cfg.Get(args[0])
			if err != nil {
				return err //nolint:wrapcheck // accessor errors already name the key and file
			}

			return printYAML(cmd, value)
		},
	}
}

func printYAML(cmd *cobra.Command, value any) error {
	out, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(out)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
