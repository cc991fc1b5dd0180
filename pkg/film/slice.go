package film

// Slice keeps frames start..end (inclusive, 0-based) of f. The result is
// empty when end < start or when f runs out before start.
func Slice(f Film, start, end int) Film {
	return &slice{f: f, start: start, end: end}
}

type slice struct {
	f     Film
	start int
	end   int
	cpt   int
}

func (sl *slice) Height() int {
	return sl.f.Height()
}

func (sl *slice) Width() int {
	return sl.f.Width()
}

func (sl *slice) Step(s Screen) bool {
	mustFit(sl, s)

	if sl.end < sl.start {
		return false
	}

	for sl.cpt < sl.start {
		sl.f.Step(s)
		sl.cpt++
	}

	if sl.cpt <= sl.end {
		sl.cpt++
		return sl.f.Step(s)
	}

	return false
}

func (sl *slice) Rewind() {
	sl.f.Rewind()
	sl.cpt = 0
}
