package httpapi

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"

	modelconfig "github.com/0xalexb/hjarta-modelconfig"
	"github.com/0xalexb/hjarta-modelconfig/listener"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func freePort(t *testing.T) string {
	t.Helper()

	listenCfg := net.ListenConfig{}

	ln, err := listenCfg.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = ln.Close() }()

	return ln.Addr().String()
}

func TestNewModule_ServesThroughListener(t *testing.T) {
	t.Parallel()

	addr := freePort(t)
	cfg := newModelConfig(t, "key1: value1\n")

	app := fxtest.New(t,
		fx.Supply(cfg),
		fx.Supply(slogDiscard()),
		NewModule("inspect", WithMeterProvider(noop.NewMeterProvider())),
		listener.NewModule("inspect", listener.WithAddress(addr)),
	)

	app.RequireStart()
	t.Cleanup(app.RequireStop)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://"+addr+"/v1/config/key1", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req) //nolint:gosec // G704: test code, URL from test server
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"key":"key1","value":"value1"}`, string(body))
}

func TestNewModule_RequiresModelConfig(t *testing.T) {
	t.Parallel()

	app := fx.New(
		fx.NopLogger,
		fx.Supply(slogDiscard()),
		NewModule("inspect"),
		fx.Invoke(fx.Annotate(func(http.Handler) {}, fx.ParamTags(`name:"inspect"`))),
	)

	err := app.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "*modelconfig.ModelConfig")
}

var _ Source = (*modelconfig.ModelConfig)(nil)
