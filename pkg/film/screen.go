package film

import (
	"strings"

	"github.com/samber/lo"
)

// Screen is a frame buffer indexed [row][col].
type Screen [][]rune

func NewScreen(height, width int) Screen {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}

	s := make(Screen, height)
	for i := range s {
		s[i] = make([]rune, width)
	}
	s.Fill(' ')
	return s
}

// ScreenOf builds a screen from text rows, padding short rows with spaces.
func ScreenOf(rows ...string) Screen {
	width := lo.Max(lo.Map(rows, func(row string, _ int) int {
		return len([]rune(row))
	}))

	s := NewScreen(len(rows), width)
	for i, row := range rows {
		copy(s[i], []rune(row))
	}
	return s
}

func (s Screen) Height() int {
	return len(s)
}

func (s Screen) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

func (s Screen) Fill(r rune) {
	for i := range s {
		for j := range s[i] {
			s[i][j] = r
		}
	}
}

func (s Screen) Clone() Screen {
	return lo.Map([][]rune(s), func(row []rune, _ int) []rune {
		return append([]rune(nil), row...)
	})
}

func (s Screen) Lines() []string {
	return lo.Map([][]rune(s), func(row []rune, _ int) string {
		return string(row)
	})
}

func (s Screen) String() string {
	return strings.Join(s.Lines(), "\n")
}
