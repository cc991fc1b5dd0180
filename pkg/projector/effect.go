package projector

import (
	"montage/pkg/film"
)

// Effect dresses up a film before it is played.
type Effect func(f film.Film) film.Film

func EffectBorder(glyph rune) Effect {
	return func(f film.Film) film.Film {
		return film.Border(f, film.WithGlyph(glyph))
	}
}

func EffectRepeat(n int) Effect {
	return func(f film.Film) film.Film {
		return film.Repeat(f, n)
	}
}

// EffectStamp keeps a badge on screen at (row, col) while the film plays.
func EffectStamp(badge film.Film, row, col int) Effect {
	return func(f film.Film) film.Film {
		return film.Overlay(f, badge, row, col)
	}
}

// EffectTrim plays only frames start..end.
func EffectTrim(start, end int) Effect {
	return func(f film.Film) film.Film {
		return film.Slice(f, start, end)
	}
}
