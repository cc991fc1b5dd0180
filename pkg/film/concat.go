package film

import (
	"github.com/samber/lo"
)

// Concat plays f1 to the end, then f2. Both films are expected to share the
// composite's size: the screen is handed to them as is.
func Concat(f1, f2 Film) Film {
	return &concat{f1: f1, f2: f2}
}

// Sequence chains films with Concat, left to right.
func Sequence(films ...Film) Film {
	if len(films) == 0 {
		return Empty(0, 0)
	}

	return lo.Reduce(films[1:], func(acc Film, f Film, _ int) Film {
		return Concat(acc, f)
	}, films[0])
}

type concat struct {
	f1        Film
	f2        Film
	firstDone bool
}

func (c *concat) Height() int {
	return lo.Max([]int{c.f1.Height(), c.f2.Height()})
}

func (c *concat) Width() int {
	return lo.Max([]int{c.f1.Width(), c.f2.Width()})
}

func (c *concat) Step(s Screen) bool {
	mustFit(c, s)

	if !c.firstDone {
		if c.f1.Step(s) {
			return true
		}
		c.firstDone = true
		// f1 is left pristine so that Rewind has nothing to undo on it.
		c.f1.Rewind()
	}

	return c.f2.Step(s)
}

func (c *concat) Rewind() {
	if !c.firstDone {
		c.f1.Rewind()
	}
	c.f2.Rewind()
	c.firstDone = false
}
