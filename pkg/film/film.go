// Package film composes text animations out of smaller ones.
//
// A Film fills caller-owned screens one frame at a time. Operators such as
// Border, Concat, Slice, Overlay and Repeat wrap films into new films, so
// pipelines nest freely. Films are not safe for concurrent use and a child
// film must only be driven by the composite that wraps it.
package film

import (
	"github.com/pkg/errors"
)

var ErrScreenSize = errors.New("screen size mismatch")

// Film is a restartable sequence of same-shaped frames.
type Film interface {
	// Height and Width never change during the lifetime of the film.
	Height() int
	Width() int
	// Step writes the next frame into s, which must be Height() x Width(),
	// and reports whether there was one. Once it returns false it keeps
	// returning false until Rewind.
	Step(s Screen) bool
	// Rewind restores the pristine state.
	Rewind()
}

// mustFit panics unless s has exactly Height() rows of Width() cells.
func mustFit(f Film, s Screen) {
	h, w := f.Height(), f.Width()
	if len(s) != h {
		panic(errors.Wrapf(ErrScreenSize, "film is %dx%d, screen is %dx%d",
			h, w, s.Height(), s.Width()))
	}
	for i, row := range s {
		if len(row) != w {
			panic(errors.Wrapf(ErrScreenSize, "film is %dx%d, screen row %d has %d cells",
				h, w, i, len(row)))
		}
	}
}

// ScreenFor allocates a blank screen sized for f.
func ScreenFor(f Film) Screen {
	return NewScreen(f.Height(), f.Width())
}

// Count plays f to exhaustion from the start and rewinds it again.
func Count(f Film) int {
	f.Rewind()
	defer f.Rewind()

	s := ScreenFor(f)
	n := 0
	for f.Step(s) {
		n++
	}
	return n
}

// Collect returns a copy of every frame of f, leaving f rewound.
func Collect(f Film) []Screen {
	f.Rewind()
	defer f.Rewind()

	var frames []Screen
	s := ScreenFor(f)
	for f.Step(s) {
		frames = append(frames, s.Clone())
	}
	return frames
}

func Empty(height, width int) Film {
	return &empty{height: height, width: width}
}

type empty struct {
	height int
	width  int
}

func (e *empty) Height() int {
	return e.height
}

func (e *empty) Width() int {
	return e.width
}

func (e *empty) Step(s Screen) bool {
	return false
}

func (e *empty) Rewind() {}
