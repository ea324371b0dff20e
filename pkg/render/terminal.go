// pkg/render/terminal.go
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/opd-ai/go-hoop/pkg/trajectory"
)

// Terminal draws the arc as an ASCII grid covering a fixed patch of
// the world, origin at the bottom-left. Each sample becomes an 'O';
// the sample that enters the basket is promoted to '*' with '='
// wings, and the basket itself is a 'U'.
type Terminal struct {
	out        io.Writer
	rows, cols int
	rowsMeters float64
	colsMeters float64
	buffer     [][]rune
}

// NewTerminal creates a terminal renderer covering rowsMeters ×
// colsMeters of world space with a rows × cols character grid.
func NewTerminal(out io.Writer, rows, cols int, rowsMeters, colsMeters float64) *Terminal {
	buffer := make([][]rune, rows)
	for i := range buffer {
		buffer[i] = make([]rune, cols)
	}
	return &Terminal{
		out:        out,
		rows:       rows,
		cols:       cols,
		rowsMeters: rowsMeters,
		colsMeters: colsMeters,
		buffer:     buffer,
	}
}

// clear resets the grid to spaces.
func (r *Terminal) clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// set writes ch at (row, col), silently dropping out-of-grid cells so
// arcs larger than the viewport truncate instead of failing.
func (r *Terminal) set(ch rune, row, col int) {
	if row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		return
	}
	r.buffer[row][col] = ch
}

// cell converts world meters to a grid cell. Row 0 is the ground
// line; Present flips the order so it prints at the bottom.
func (r *Terminal) cell(x, y float64) (row, col int) {
	row = int(math.Round(y * float64(r.rows-1) / r.rowsMeters))
	col = int(math.Round(x * float64(r.cols-1) / r.colsMeters))
	return row, col
}

// setMeters plots a world-space point, widening the made-basket
// instant into an '==*==' marker.
func (r *Terminal) setMeters(ch rune, x, y float64, madeHere bool) {
	row, col := r.cell(x, y)
	if madeHere {
		for _, offset := range []int{-2, -1, 1, 2} {
			r.set('=', row, col+offset)
		}
		ch = '*'
	}
	r.set(ch, row, col)
}

// Render implements Renderer.
func (r *Terminal) Render(traj trajectory.Trajectory, target trajectory.Target, hit trajectory.HitResult) error {
	r.clear()

	for i, s := range traj {
		madeHere := hit.Made && i == hit.Index
		r.setMeters('O', s.Pos.X, s.Pos.Y, madeHere)
	}

	basketRow, basketCol := r.cell(target.Pos.X, target.Pos.Y)
	r.set('U', basketRow, basketCol)

	return r.present()
}

// present writes the grid top row first, framed the way the game
// renderers frame their viewports.
func (r *Terminal) present() error {
	border := "+" + strings.Repeat("-", r.cols) + "+"

	if _, err := fmt.Fprintln(r.out, border); err != nil {
		return err
	}
	for row := r.rows - 1; row >= 0; row-- {
		if _, err := fmt.Fprintf(r.out, "|%s|\n", string(r.buffer[row])); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.out, border)
	return err
}
