// Package render draws a grid of cell states as text, optionally colored
// with lipgloss.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
)

var (
	colorWall     = lipgloss.Color("240") // dim gray
	colorPending  = lipgloss.Color("236")
	colorVisited  = lipgloss.Color("255")
	colorSelected = lipgloss.Color("36") // teal
	colorUnset    = lipgloss.Color("167")
	colorPath     = lipgloss.Color("220") // amber
)

// RoleFunc maps a generator-local state to its display role.
// (*maze.Generator).Role satisfies it.
type RoleFunc func(grid.State) maze.Role

// Palette holds one glyph per role and, for colored output, one style per role.
type Palette struct {
	Glyphs map[maze.Role]string
	Styles map[maze.Role]lipgloss.Style

	// Path is drawn over cells on a solution route. PathStyle applies when
	// Styles is non-empty.
	Path      string
	PathStyle lipgloss.Style
}

// ASCII returns the plain palette: '#' walls, ' ' passages, '.' pending,
// '@' the cursor and '?' for cells never written.
func ASCII() Palette {
	return Palette{
		Glyphs: map[maze.Role]string{
			maze.RoleUnset:    "?",
			maze.RoleWall:     "#",
			maze.RolePending:  ".",
			maze.RoleVisited:  " ",
			maze.RoleSelected: "@",
		},
		Path: "o",
	}
}

// Blocks returns a two-column block palette with background colors.
func Blocks() Palette {
	block := "  "
	return Palette{
		Glyphs: map[maze.Role]string{
			maze.RoleUnset:    block,
			maze.RoleWall:     block,
			maze.RolePending:  block,
			maze.RoleVisited:  block,
			maze.RoleSelected: block,
		},
		Styles: map[maze.Role]lipgloss.Style{
			maze.RoleUnset:    lipgloss.NewStyle().Background(colorUnset),
			maze.RoleWall:     lipgloss.NewStyle().Background(colorWall),
			maze.RolePending:  lipgloss.NewStyle().Background(colorPending),
			maze.RoleVisited:  lipgloss.NewStyle().Background(colorVisited),
			maze.RoleSelected: lipgloss.NewStyle().Background(colorSelected),
		},
		Path:      block,
		PathStyle: lipgloss.NewStyle().Background(colorPath),
	}
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPalette replaces the default ASCII palette.
func WithPalette(p Palette) Option {
	return func(r *Renderer) {
		r.palette = p
	}
}

// Renderer turns grid rows into strings.
type Renderer struct {
	roles   RoleFunc
	palette Palette
}

// New returns a Renderer resolving states through roles.
// A nil roles treats every non-zero state as a wall.
func New(roles RoleFunc, opts ...Option) *Renderer {
	if roles == nil {
		roles = func(s grid.State) maze.Role {
			if s == grid.Unset {
				return maze.RoleUnset
			}
			return maze.RoleWall
		}
	}
	r := &Renderer{roles: roles, palette: ASCII()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cell renders a single state.
func (r *Renderer) Cell(s grid.State) string {
	role := r.roles(s)
	glyph, ok := r.palette.Glyphs[role]
	if !ok {
		glyph = "?"
	}
	if style, ok := r.palette.Styles[role]; ok {
		return style.Render(glyph)
	}
	return glyph
}

// Line renders one row.
func (r *Renderer) Line(row []grid.State) string {
	var b strings.Builder
	for _, s := range row {
		b.WriteString(r.Cell(s))
	}
	return b.String()
}

// Render draws the whole grid, rows separated by newlines, no trailing newline.
func (r *Renderer) Render(g *grid.Grid) string {
	lines := make([]string, g.Height())
	for i := range lines {
		lines[i] = r.Line(g.Row(i + 1))
	}
	return strings.Join(lines, "\n")
}

// RenderPath draws g with the cells of path replaced by the palette's path glyph.
func (r *Renderer) RenderPath(g *grid.Grid, path []grid.Coord) string {
	on := make(map[grid.Coord]bool, len(path))
	for _, c := range path {
		on[c] = true
	}
	mark := r.palette.Path
	if len(r.palette.Styles) > 0 {
		mark = r.palette.PathStyle.Render(mark)
	}

	lines := make([]string, g.Height())
	for i := range lines {
		var b strings.Builder
		for j, s := range g.Row(i + 1) {
			if on[grid.Coord{Row: i + 1, Col: j + 1}] {
				b.WriteString(mark)
				continue
			}
			b.WriteString(r.Cell(s))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
