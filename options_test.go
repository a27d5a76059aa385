package modelconfig_test

import (
	"bytes"
	"testing"
	"time"

	modelconfig "github.com/0xalexb/hjarta-modelconfig"
	"github.com/0xalexb/hjarta-modelconfig/listener"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestOptions_Logging(t *testing.T) {
	t.Parallel()

	var (
		opts modelconfig.Options
		buf  bytes.Buffer
	)

	for _, apply := range []modelconfig.Option{
		modelconfig.WithLogLevel("debug"),
		modelconfig.WithLogFormat("text"),
		modelconfig.WithLogOutput(&buf),
		modelconfig.WithStopTimeout(3 * time.Second),
	} {
		apply(&opts)
	}

	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, "text", opts.LogFormat)
	assert.Same(t, &buf, opts.LogOutput)
	assert.Equal(t, 3*time.Second, opts.StopTimeout)
	assert.Empty(t, opts.Modules)
}

func TestOptions_ModulesAccumulate(t *testing.T) {
	t.Parallel()

	var opts modelconfig.Options

	modelconfig.WithModelConfig("configs/dev.yaml")(&opts)
	modelconfig.WithPathSource(modelconfig.StaticPath("/etc/model/config.yaml"))(&opts)
	modelconfig.WithHTTPListener("inspect", listener.WithAddress("127.0.0.1:0"))(&opts)
	modelconfig.WithModules(fx.Module("extra-a"), fx.Module("extra-b"))(&opts)

	require.Len(t, opts.Modules, 5)
}
