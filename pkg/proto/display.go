package proto

import (
	"montage/pkg/film"
)

// Display is a character device frames can be drawn on.
type Display interface {
	Startup() error
	Shutdown() error

	Clear() error
	DrawFrame(frame film.Screen) error
}
