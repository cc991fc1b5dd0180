package virtual

import (
	"sync"

	"go.uber.org/zap"

	"montage/pkg/film"
)

func Mock(logger *zap.Logger) *Mocker {
	return &Mocker{l: logger}
}

// Mocker is a display that keeps what it is asked to draw.
type Mocker struct {
	mu        sync.Mutex
	l         *zap.Logger
	frames    []film.Screen
	startups  int
	shutdowns int
	clears    int
}

func (m *Mocker) Startup() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.startups++
	m.l.Info("startup")
	return nil
}

func (m *Mocker) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.shutdowns++
	m.l.Info("shutdown")
	return nil
}

func (m *Mocker) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clears++
	m.l.Info("clear")
	return nil
}

func (m *Mocker) DrawFrame(frame film.Screen) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.frames = append(m.frames, frame.Clone())
	m.l.With(
		zap.Int("h", frame.Height()),
		zap.Int("w", frame.Width()),
		zap.Int("n", len(m.frames)),
	).Info("draw-frame")
	return nil
}

func (m *Mocker) Frames() []film.Screen {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]film.Screen(nil), m.frames...)
}

func (m *Mocker) Startups() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startups
}

func (m *Mocker) Shutdowns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shutdowns
}

func (m *Mocker) Clears() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}
