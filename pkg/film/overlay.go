package film

// Overlay stamps the frames of over onto those of base, with the top-left
// corner of over at (row, col). Negative offsets are treated as 0 and cells
// falling outside base are dropped. The composite ends with base; once over
// is exhausted base plays through untouched.
func Overlay(base, over Film, row, col int) Film {
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}

	return &overlay{
		base:    base,
		over:    over,
		row:     row,
		col:     col,
		scratch: ScreenFor(over),
	}
}

type overlay struct {
	base    Film
	over    Film
	row     int
	col     int
	scratch Screen
}

func (o *overlay) Height() int {
	return o.base.Height()
}

func (o *overlay) Width() int {
	return o.base.Width()
}

func (o *overlay) Step(s Screen) bool {
	mustFit(o, s)

	res := o.base.Step(s)

	if o.over.Step(o.scratch) {
		for i, row := range o.scratch {
			y := i + o.row
			if y >= len(s) {
				break
			}
			for j, r := range row {
				x := j + o.col
				if x >= len(s[y]) {
					break
				}
				s[y][x] = r
			}
		}
	}

	return res
}

func (o *overlay) Rewind() {
	o.base.Rewind()
	o.over.Rewind()
}
