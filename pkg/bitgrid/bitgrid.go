// Package bitgrid encodes integer trajectories as rectangular grids of
// ternary cells, one row per trajectory element.
//
// Row i holds the binary expansion of the i-th value, most-significant bit
// at column 0, with no leading-zero padding; columns past the value's
// natural bit length stay [Unset]. The grid is the "spacetime" raster the
// renderer paints: rows are time, columns are bit position.
package bitgrid

import "math/big"

// Cell is the state of a single grid cell.
type Cell int8

const (
	// Unset marks a column beyond the row value's bit length.
	Unset Cell = -1
	// Zero is a 0 bit of the row value.
	Zero Cell = 0
	// One is a 1 bit of the row value.
	One Cell = 1
)

// Grid is an immutable (rows × cols) array of cells. The zero value is an
// empty grid.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// Rows returns the grid height, equal to the trajectory length.
func (g Grid) Rows() int { return g.rows }

// Cols returns the grid width, equal to the maximum bit length over all
// encoded values.
func (g Grid) Cols() int { return g.cols }

// At returns the cell at (row, col). Indices must be in range.
func (g Grid) At(row, col int) Cell {
	return g.cells[row*g.cols+col]
}

// Encode converts a trajectory into its bit grid. Encoding is deterministic
// and total for any sequence of positive integers; values are read but never
// retained.
func Encode(values []*big.Int) Grid {
	maxBits := 0
	for _, v := range values {
		if v.Sign() > 0 && v.BitLen() > maxBits {
			maxBits = v.BitLen()
		}
	}

	g := Grid{
		rows:  len(values),
		cols:  maxBits,
		cells: make([]Cell, len(values)*maxBits),
	}
	for i := range g.cells {
		g.cells[i] = Unset
	}

	for i, v := range values {
		bl := v.BitLen()
		for j := 0; j < bl; j++ {
			// Column 0 holds the most-significant bit.
			if v.Bit(bl-1-j) == 1 {
				g.cells[i*g.cols+j] = One
			} else {
				g.cells[i*g.cols+j] = Zero
			}
		}
	}
	return g
}

// RowValue reconstructs the integer encoded by row r from its set cells,
// MSB-first. It is the inverse of [Encode] for any row and backs the
// round-trip tests.
func (g Grid) RowValue(r int) *big.Int {
	v := new(big.Int)
	for c := 0; c < g.cols; c++ {
		cell := g.At(r, c)
		if cell == Unset {
			break
		}
		v.Lsh(v, 1)
		if cell == One {
			v.SetBit(v, 0, 1)
		}
	}
	return v
}

// RowBits returns the number of set (non-Unset) cells in row r, i.e. the
// bit length of the row's value.
func (g Grid) RowBits(r int) int {
	n := 0
	for c := 0; c < g.cols; c++ {
		if g.At(r, c) == Unset {
			break
		}
		n++
	}
	return n
}
