package modelconfig

import (
	"go.uber.org/fx"
)

// ModuleName is the Fx module name used by NewModule.
const ModuleName = "modelconfig"

// NewModule creates an Fx module that provides *ModelConfig.
// A PathSource in the container, if any, is consulted first; developmentConfig is the fallback.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(developmentConfig string) fx.Option {
	return fx.Module(ModuleName,
		fx.Provide(
			fx.Annotate(
				func(host PathSource) (*ModelConfig, error) {
					return New(host, developmentConfig)
				},
				fx.ParamTags(`optional:"true"`),
			),
		),
	)
}

// SupplyPathSource returns an Fx option that makes source available as the container's PathSource.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func SupplyPathSource(source PathSource) fx.Option {
	return fx.Supply(fx.Annotate(source, fx.As(new(PathSource))))
}

// WithPathSource adds a host PathSource to the application.
func WithPathSource(source PathSource) Option {
	return WithModules(SupplyPathSource(source))
}
