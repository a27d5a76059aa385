package main

import (
	"time"

	modelconfig "github.com/0xalexb/hjarta-modelconfig"
	"github.com/0xalexb/hjarta-modelconfig/httpapi"
	"github.com/0xalexb/hjarta-modelconfig/listener"
	"github.com/0xalexb/hjarta-modelconfig/listener/middleware"

	"github.com/spf13/cobra"
)

const inspectListener = "inspect"

type serveFlags struct {
	address string
	timeout time.Duration
}

// newCmdServe returns a command that serves configuration lookups over HTTP until signalled.
func newCmdServe(flags *globalFlags) *cobra.Command {
	var serve serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve configuration lookups over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := newServeApp(flags, serve)

			err := app.Err()
			if err != nil {
				return err //nolint:wrapcheck // fx names the failing constructor
			}

			return app.Run(cmd.Context()) //nolint:wrapcheck // App errors name the failing phase
		},
	}

	cmd.Flags().StringVar(&serve.address, "address", listener.DefaultAddress, "Listen address")
	cmd.Flags().DurationVar(&serve.timeout, "timeout", middleware.DefaultTimeout, "Per-request deadline")

	return cmd
}

func newServeApp(flags *globalFlags, serve serveFlags, extra ...modelconfig.Option) *modelconfig.App {
	opts := []modelconfig.Option{
		modelconfig.WithLogLevel(flags.logLevel),
		modelconfig.WithLogFormat(flags.logFormat),
		modelconfig.WithPathSource(modelconfig.EnvPath(modelconfig.EnvPathVariable)),
		modelconfig.WithModelConfig(flags.configPath),
		modelconfig.WithModules(httpapi.NewModule(inspectListener, httpapi.WithTimeout(serve.timeout))),
		modelconfig.WithHTTPListener(inspectListener, listener.WithAddress(serve.address)),
	}

	return modelconfig.NewApp(append(opts, extra...)...)
}
