package film

// Repeat plays f n times in a row. n < 1 gives an empty film.
func Repeat(f Film, n int) Film {
	return &repeat{f: f, n: n}
}

type repeat struct {
	f   Film
	n   int
	cpt int
}

func (r *repeat) Height() int {
	return r.f.Height()
}

func (r *repeat) Width() int {
	return r.f.Width()
}

func (r *repeat) Step(s Screen) bool {
	mustFit(r, s)

	if r.cpt >= r.n {
		return false
	}

	if r.f.Step(s) {
		return true
	}

	r.cpt++
	r.f.Rewind()
	if r.cpt < r.n {
		return r.f.Step(s)
	}

	return false
}

func (r *repeat) Rewind() {
	r.f.Rewind()
	r.cpt = 0
}
