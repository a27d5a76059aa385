package modelconfig

import "os"

// EnvPathVariable is the environment variable the CLI reads a host-injected path from.
const EnvPathVariable = "MODELCONFIG_PATH"

// PathSource reports a configuration path chosen by a host process.
// An empty string means the host has not supplied one.
type PathSource interface {
	ConfigPath() string
}

// PathSourceFunc adapts a function to PathSource.
type PathSourceFunc func() string

// ConfigPath calls f.
func (f PathSourceFunc) ConfigPath() string {
	return f()
}

// StaticPath returns a PathSource that always reports path.
//
//nolint:ireturn // PathSource is the injection point.
func StaticPath(path string) PathSource {
	return PathSourceFunc(func() string { return path })
}

// EnvPath returns a PathSource that reads the named environment variable each time it is asked.
//
//nolint:ireturn // PathSource is the injection point.
func EnvPath(name string) PathSource {
	return PathSourceFunc(func() string { return os.Getenv(name) })
}
