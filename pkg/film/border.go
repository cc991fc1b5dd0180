package film

const DefaultGlyph = '*'

type BorderOption func(b *border)

func WithGlyph(glyph rune) BorderOption {
	return func(b *border) {
		b.glyph = glyph
	}
}

// Border frames every picture of f with a one-cell margin of glyphs.
func Border(f Film, opts ...BorderOption) Film {
	b := &border{
		f:     f,
		inner: ScreenFor(f),
		glyph: DefaultGlyph,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

type border struct {
	f     Film
	inner Screen
	glyph rune
}

func (b *border) Height() int {
	return b.f.Height() + 2
}

func (b *border) Width() int {
	return b.f.Width() + 2
}

func (b *border) Step(s Screen) bool {
	mustFit(b, s)

	res := b.f.Step(b.inner)

	last := len(s) - 1
	for i, row := range s {
		if i == 0 || i == last {
			for j := range row {
				row[j] = b.glyph
			}
			continue
		}
		row[0] = b.glyph
		row[len(row)-1] = b.glyph
	}

	if res {
		for i, row := range b.inner {
			copy(s[i+1][1:], row)
		}
	}

	return res
}

func (b *border) Rewind() {
	b.f.Rewind()
}
