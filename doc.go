// Package modelconfig reads top-level values from a model's YAML configuration file.
//
// The file path is chosen once, when the accessor is built. A host process
// that decides the real location at runtime hands it over through a
// PathSource; when the host reports nothing the caller's development path is
// used instead:
//
//	cfg, err := modelconfig.New(modelconfig.EnvPath(modelconfig.EnvPathVariable), "configs/dev.yaml")
//	if err != nil {
//	    return err // errors.Is(err, modelconfig.ErrConfigNotFound)
//	}
//
//	temperature, err := cfg.Get("temperature")
//
// Every Get opens the file, parses it and closes it again, so edits made
// between calls are picked up. Failures are reported as ErrConfigParse or
// ErrConfigKeyNotFound.
//
// The package also carries an Fx integration (NewModule, App) used by the
// modelconfig command to serve lookups over HTTP.
package modelconfig
