package virtual

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"montage/pkg/film"
	"montage/pkg/proto"
)

var _ proto.Display = (*Mocker)(nil)

func TestMockerRecordsFrames(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := Mock(zap.New(core))

	require.NoError(t, m.Startup())
	require.NoError(t, m.Clear())

	s := film.ScreenOf("ab")
	require.NoError(t, m.DrawFrame(s))
	s[0][0] = 'z'
	require.NoError(t, m.DrawFrame(s))
	require.NoError(t, m.Shutdown())

	frames := m.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, "ab", frames[0].String())
	assert.Equal(t, "zb", frames[1].String())
	assert.Equal(t, 1, m.Startups())
	assert.Equal(t, 1, m.Shutdowns())
	assert.Equal(t, 1, m.Clears())

	assert.Equal(t, 2, logs.FilterMessage("draw-frame").Len())
}

func TestMockerDoesNotExposeLock(t *testing.T) {
	_, ok := interface{}(Mock(zap.NewNop())).(sync.Locker)
	assert.False(t, ok)
}
