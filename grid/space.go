package grid

// offsets4 lists orthogonal neighbor deltas in N, E, S, W order.
var offsets4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Space is the internal (passages only) coordinate space of a real grid.
type Space struct {
	Width, Height int
}

// InternalSpace returns the internal space of a width×height real grid:
// ⌊(width-1)/2⌋ × ⌊(height-1)/2⌋. Even real dimensions lose their last line.
func InternalSpace(width, height int) Space {
	return Space{Width: (width - 1) / 2, Height: (height - 1) / 2}
}

// Area returns the number of internal cells.
func (s Space) Area() int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return s.Width * s.Height
}

// InBounds reports whether c lies inside the space.
func (s Space) InBounds(c Coord) bool {
	return c.Row >= 1 && c.Row <= s.Height && c.Col >= 1 && c.Col <= s.Width
}

// Index maps c to a row-major index in [0, Area()).
func (s Space) Index(c Coord) int {
	return (c.Row-1)*s.Width + (c.Col - 1)
}

// Coord converts a row-major index back to a coordinate.
func (s Space) Coord(idx int) Coord {
	return Coord{Row: idx/s.Width + 1, Col: idx%s.Width + 1}
}

// Neighbors appends the in-bounds orthogonal neighbors of c to dst (N, E, S, W order).
func (s Space) Neighbors(dst []Coord, c Coord) []Coord {
	for _, d := range offsets4 {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if s.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Real maps internal cell c to its real-grid coordinate (2i, 2j).
func Real(c Coord) Coord {
	return Coord{Row: 2 * c.Row, Col: 2 * c.Col}
}

// Between maps the wall separating adjacent internal cells a and b to its
// real-grid coordinate (a.Row+b.Row, a.Col+b.Col).
func Between(a, b Coord) Coord {
	return Coord{Row: a.Row + b.Row, Col: a.Col + b.Col}
}

// Adjacent reports whether a and b are orthogonal neighbors.
func Adjacent(a, b Coord) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// Checkerboard paints every cell of a width×height real grid row by row.
// A cell (i,j) gets passage when i and j are both even with i < height and
// j < width; every other cell gets wall.
func Checkerboard(width, height int, passage, wall State, progress float64) Batch {
	if width <= 0 || height <= 0 {
		return Batch{}
	}
	b := make(Batch, 0, width*height)
	for i := 1; i <= height; i++ {
		for j := 1; j <= width; j++ {
			s := wall
			if i%2 == 0 && j%2 == 0 && i < height && j < width {
				s = passage
			}
			b = append(b, Update{Row: i, Col: j, State: s, Progress: progress})
		}
	}
	return b
}
