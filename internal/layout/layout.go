// Package layout turns a board's grid and a viewport into cell geometry and
// the ordered rows of renderable cells.
package layout

import (
	"errors"
	"fmt"

	"github.com/jask/symboard/internal/board"
)

// ErrPrecondition is returned for non-positive grid or viewport dimensions.
var ErrPrecondition = errors.New("layout precondition violated")

// Margins are subtracted from every cell. They are fixed per renderer,
// never per board.
type Margins struct {
	Row    int
	Column int
}

var (
	// PixelMargins are the margins used by pixel renderers.
	PixelMargins = Margins{Row: 30, Column: 5}
	// TerminalMargins are the margins used by the terminal renderer, in character cells.
	TerminalMargins = Margins{Row: 1, Column: 1}
)

// Viewport is the space available to the grid.
type Viewport struct {
	Height int
	Width  int
}

// Geometry is the size of one cell.
type Geometry struct {
	CellHeight int
	CellWidth  int
}

// Cell is a grid position with its resolved content. Button is nil for
// empty cells.
type Cell struct {
	Row    int
	Column int
	Button *board.Button
	Image  *board.ResolvedImage
}

// Empty reports whether the cell has no button.
func (c Cell) Empty() bool { return c.Button == nil }

// Layout is everything a renderer needs for one pass.
type Layout struct {
	Geometry
	Rows [][]Cell
}

// CellSize computes per-cell dimensions: viewport / count - margin. The
// result may be zero or negative for tiny viewports; renderers decide how to
// clip.
func CellSize(rows, columns int, vp Viewport, m Margins) (Geometry, error) {
	if rows <= 0 || columns <= 0 {
		return Geometry{}, fmt.Errorf("%w: grid %dx%d", ErrPrecondition, rows, columns)
	}
	if vp.Height <= 0 || vp.Width <= 0 {
		return Geometry{}, fmt.Errorf("%w: viewport %dx%d", ErrPrecondition, vp.Height, vp.Width)
	}
	return Geometry{
		CellHeight: vp.Height/rows - m.Row,
		CellWidth:  vp.Width/columns - m.Column,
	}, nil
}

// Calculate lays out a validated board. Cell order follows the board's grid
// order exactly.
func Calculate(b *board.Board, vp Viewport, m Margins) (Layout, error) {
	geo, err := CellSize(b.Grid.Rows, b.Grid.Columns, vp, m)
	if err != nil {
		return Layout{}, err
	}
	rows, err := Cells(b)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Geometry: geo, Rows: rows}, nil
}

// Cells resolves the grid into rows of cells.
func Cells(b *board.Board) ([][]Cell, error) {
	out := make([][]Cell, 0, len(b.Grid.Order))
	for r, row := range b.Grid.Order {
		cells := make([]Cell, 0, len(row))
		for c, id := range row {
			cell := Cell{Row: r, Column: c}
			if id != "" {
				btn, ok := b.Button(id)
				if !ok {
					return nil, &board.ConsistencyError{
						Board:    b.Name,
						Problems: []string{fmt.Sprintf("cell (%d,%d) references unknown button %q", r, c, id)},
					}
				}
				img, err := board.ResolveImage(btn, b)
				if err != nil {
					return nil, err
				}
				cell.Button = &btn
				cell.Image = img
			}
			cells = append(cells, cell)
		}
		out = append(out, cells)
	}
	return out, nil
}
