package listener

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_Validation(t *testing.T) {
	t.Parallel()

	handler := inspectionHandler()

	testCases := []struct {
		name    string
		srvName string
		handler http.Handler
		cfg     Config
		wantErr error
	}{
		{name: "empty name", handler: handler, wantErr: ErrEmptyName},
		{name: "nil handler", srvName: "inspect", wantErr: ErrNilHandler},
		{name: "negative timeout", srvName: "inspect", handler: handler, cfg: Config{IdleTimeout: -1}, wantErr: ErrInvalidTimeout},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			srv, err := NewServer(testCase.srvName, testCase.handler, testCase.cfg, nil, nil)

			require.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, srv)
		})
	}
}

func TestNewServer_AppliesConfig(t *testing.T) {
	t.Parallel()

	srv, err := NewServer("inspect", inspectionHandler(), Config{WriteTimeout: time.Second}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, srv.Addr())
	assert.Equal(t, DefaultReadHeaderTimeout, srv.http.ReadHeaderTimeout)
	assert.Equal(t, time.Second, srv.http.WriteTimeout)
	assert.Equal(t, DefaultIdleTimeout, srv.http.IdleTimeout)
	assert.NotNil(t, srv.http.ErrorLog)
}

func TestServer_ServesLookupsUntilStopped(t *testing.T) {
	t.Parallel()

	logger, logs := bufferLogger()

	srv, err := NewServer("inspect", inspectionHandler(), Config{Address: "127.0.0.1:0"}, logger, nil)
	require.NoError(t, err)

	require.NoError(t, srv.Start(context.Background()))

	addr := srv.Addr()
	assert.NotEqual(t, "127.0.0.1:0", addr)

	status, body := fetch(t, "http://"+addr+"/v1/config/llm_endpoint")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"key":"llm_endpoint","value":"dbrx"}`, body)

	require.NoError(t, srv.Stop(context.Background()))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://"+addr+"/healthz", nil)
	require.NoError(t, err)

	_, err = http.DefaultClient.Do(req) //nolint:bodyclose,gosec // request is expected to fail
	require.Error(t, err)

	assert.Contains(t, logs.String(), "listener=inspect")
	assert.Contains(t, logs.String(), "address="+addr)
	assert.Contains(t, logs.String(), "stopping HTTP listener")
}

func TestServer_StartOnTakenPort(t *testing.T) {
	t.Parallel()

	first, err := NewServer("inspect", inspectionHandler(), Config{Address: "127.0.0.1:0"}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, first.Start(context.Background()))

	t.Cleanup(func() { _ = first.Stop(context.Background()) })

	second, err := NewServer("inspect-2", inspectionHandler(), Config{Address: first.Addr()}, nil, nil)
	require.NoError(t, err)

	err = second.Start(context.Background())

	require.ErrorIs(t, err, ErrListenFailed)
	assert.Contains(t, err.Error(), first.Addr())
}

func TestServer_UnexpectedServeErrorIsReported(t *testing.T) {
	t.Parallel()

	reported := make(chan error, 1)

	srv, err := NewServer("inspect", inspectionHandler(), Config{Address: "127.0.0.1:0"}, nil, func(err error) {
		reported <- err
	})
	require.NoError(t, err)
	require.NoError(t, srv.Start(context.Background()))

	// Closing the socket behind http.Server's back is not a graceful stop.
	_ = srv.bound.Close()

	select {
	case err := <-reported:
		require.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("serve failure was not reported")
	}
}

func TestServer_StopDoesNotReportFailure(t *testing.T) {
	t.Parallel()

	reported := make(chan error, 1)

	srv, err := NewServer("inspect", inspectionHandler(), Config{Address: "127.0.0.1:0"}, nil, func(err error) {
		reported <- err
	})
	require.NoError(t, err)
	require.NoError(t, srv.Start(context.Background()))
	require.NoError(t, srv.Stop(context.Background()))

	select {
	case err := <-reported:
		t.Fatalf("unexpected failure report: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestServer_StopWaitsForInFlightLookup(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		<-release
		w.WriteHeader(http.StatusOK)
	})

	srv, err := NewServer("inspect", handler, Config{Address: "127.0.0.1:0"}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, srv.Start(context.Background()))

	done := make(chan int, 1)

	go func() {
		req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://"+srv.Addr()+"/v1/config/slow", nil)

		resp, reqErr := http.DefaultClient.Do(req) //nolint:gosec // G704: test code, URL from test server
		if reqErr != nil {
			done <- 0

			return
		}

		_ = resp.Body.Close()
		done <- resp.StatusCode
	}()

	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err = srv.Stop(ctx)
	require.ErrorIs(t, err, ErrShutdownFailed)

	close(release)

	assert.Equal(t, http.StatusOK, <-done)
}
