package remote

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"montage/pkg/device/virtual"
	"montage/pkg/film"
)

func serve(t *testing.T) (*virtual.Mocker, *Client) {
	t.Helper()

	dev := virtual.Mock(zap.NewNop())
	srv := &http.Server{Addr: "127.0.0.1:0"}
	lc := fxtest.NewLifecycle(t)

	require.NoError(t, Proxy(dev, srv, lc, zap.NewNop()))
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	client, err := New(srv.Addr)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.(*Client).Close()
	})

	return dev, client.(*Client)
}

func TestRemoteDrawFrame(t *testing.T) {
	dev, client := serve(t)

	require.NoError(t, client.Startup())
	require.NoError(t, client.Clear())
	require.NoError(t, client.DrawFrame(film.ScreenOf("****", "*ab*", "****")))
	require.NoError(t, client.Shutdown())

	frames := dev.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, []string{"****", "*ab*", "****"}, frames[0].Lines())
	assert.Equal(t, 1, dev.Startups())
	assert.Equal(t, 1, dev.Clears())
	assert.Equal(t, 1, dev.Shutdowns())
}

func TestRemoteUnknownCommand(t *testing.T) {
	_, client := serve(t)

	err := client.command("restart")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
