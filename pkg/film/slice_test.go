package film

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       [][]string
	}{
		{name: "whole", start: 0, end: 4, want: [][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}}},
		{name: "middle", start: 1, end: 3, want: [][]string{{"b"}, {"c"}, {"d"}}},
		{name: "single", start: 2, end: 2, want: [][]string{{"c"}}},
		{name: "past end", start: 3, end: 10, want: [][]string{{"d"}, {"e"}}},
		{name: "start beyond film", start: 7, end: 9, want: nil},
		{name: "reversed", start: 3, end: 1, want: nil},
		{name: "negative start", start: -2, end: 0, want: [][]string{{"a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Slice(letters(5, 1, 1), tt.start, tt.end)
			assert.Equal(t, tt.want, lines(Collect(f)))
		})
	}
}

func TestSliceReversedNeverTouchesFilm(t *testing.T) {
	base := letters(5, 1, 1)
	f := Slice(base, 4, 0)

	s := ScreenFor(f)
	for i := 0; i < 3; i++ {
		assert.False(t, f.Step(s))
	}
	assert.Equal(t, 0, base.steps)
}

func TestSliceStopsCallingFilmAfterEnd(t *testing.T) {
	base := letters(5, 1, 1)
	f := Slice(base, 0, 1)

	s := ScreenFor(f)
	for f.Step(s) {
	}
	steps := base.steps
	assert.False(t, f.Step(s))
	assert.Equal(t, steps, base.steps)
}

func TestSliceRewind(t *testing.T) {
	assertReplays(t, Slice(letters(6, 2, 3), 1, 4))
}
