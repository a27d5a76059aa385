package modelconfig

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/0xalexb/hjarta-modelconfig/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// DefaultStopTimeout bounds the graceful stop performed by Run.
const DefaultStopTimeout = 15 * time.Second

var (
	// ErrAppNotInitialized is returned by the methods of a nil App.
	ErrAppNotInitialized = errors.New("app not initialized")
	// ErrAbnormalExit is returned by Run when a module shut the app down with a non-zero exit code,
	// for example after its HTTP listener stopped serving.
	ErrAbnormalExit = errors.New("application exited abnormally")
)

// App hosts the model configuration, its HTTP listeners and logging in one Fx graph.
type App struct {
	fx          *fx.App
	logger      *slog.Logger
	stopTimeout time.Duration
}

// NewApp builds the graph. Construction errors are reported by Err and by Start.
// The configured logger becomes slog's default and Fx's event logger.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := logging.NewLogger(loggerConfig, options.logOutput())
	slog.SetDefault(logger)

	return &App{
		fx: fx.New(
			fx.WithLogger(func() fxevent.Logger {
				return &fxevent.SlogLogger{Logger: logger}
			}),
			fx.Supply(loggerConfig, logger),
			fx.Options(options.Modules...),
		),
		logger:      logger,
		stopTimeout: options.stopTimeout(),
	}
}

// Err returns the error, if any, that occurred while building the dependency graph.
func (app *App) Err() error {
	if app == nil || app.fx == nil {
		return ErrAppNotInitialized
	}

	return app.fx.Err() //nolint:wrapcheck // fx already describes the failing constructor
}

// Start runs the OnStart hooks, binding listeners among others.
func (app *App) Start(ctx context.Context) error {
	if app == nil || app.fx == nil {
		return ErrAppNotInitialized
	}

	err := app.fx.Start(ctx)
	if err != nil {
		return fmt.Errorf("starting app: %w", err)
	}

	return nil
}

// Stop runs the OnStop hooks, draining listeners among others.
func (app *App) Stop(ctx context.Context) error {
	if app == nil || app.fx == nil {
		return ErrAppNotInitialized
	}

	err := app.fx.Stop(ctx)
	if err != nil {
		return fmt.Errorf("stopping app: %w", err)
	}

	return nil
}

// Run starts the app and blocks until ctx is done, an OS signal arrives or a module asks
// for shutdown. It then stops the app within the stop timeout. A shutdown requested with
// a non-zero exit code is reported as ErrAbnormalExit.
func (app *App) Run(ctx context.Context) error {
	err := app.Start(ctx)
	if err != nil {
		return err
	}

	var exitCode int

	select {
	case signal := <-app.fx.Wait():
		exitCode = signal.ExitCode
		app.logger.Info("shutdown requested", slog.Any("signal", signal.Signal), slog.Int("exit_code", exitCode))
	case <-ctx.Done():
		app.logger.Info("shutdown requested", slog.Any("reason", context.Cause(ctx)))
	}

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), app.stopTimeout)
	defer cancel()

	err = app.Stop(stopCtx)
	if err != nil {
		return err
	}

	if exitCode != 0 {
		return fmt.Errorf("%w: exit code %d", ErrAbnormalExit, exitCode)
	}

	return nil
}
