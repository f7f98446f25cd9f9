package solver

import (
	"errors"

	"svw.info/sudoku-enum/internal/domain"
)

// ExhaustiveSolver enumerates every valid completion of a grid by
// depth-first backtracking, with no propagation beyond direct conflict
// checks and no early termination.
type ExhaustiveSolver struct{}

func NewExhaustiveSolver() *ExhaustiveSolver { return &ExhaustiveSolver{} }

// ErrGridFull reports a grid with no empty cell handed to Enumerate.
// That is a caller contract violation, not a zero-solution result.
var ErrGridFull = errors.New("grid already full at entry")

// RowConflict reports whether v already appears in row.
func RowConflict(g *domain.Grid, row int, v uint8) bool {
	for c := 0; c < 9; c++ {
		if g[row][c] == v {
			return true
		}
	}
	return false
}

// ColumnConflict reports whether v already appears in col.
func ColumnConflict(g *domain.Grid, col int, v uint8) bool {
	for r := 0; r < 9; r++ {
		if g[r][col] == v {
			return true
		}
	}
	return false
}

// BoxConflict reports whether v already appears in the 3x3 box containing
// (row, col). The box corner is (row-row%3, col-col%3).
func BoxConflict(g *domain.Grid, row, col int, v uint8) bool {
	br, bc := row-row%3, col-col%3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return true
			}
		}
	}
	return false
}

// GivesConflict reports whether placing v at (row, col) would duplicate it
// in the cell's row, column, or box. The target cell itself must be empty.
func GivesConflict(g *domain.Grid, row, col int, v uint8) bool {
	return RowConflict(g, row, v) || ColumnConflict(g, col, v) || BoxConflict(g, row, col, v)
}

// FindEmptyCell returns the first empty cell in row-major order, or
// ok=false when the grid is full. The scan order fixes the search
// branching order and with it the solution discovery order.
func FindEmptyCell(g *domain.Grid) (domain.CellCoord, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return domain.CellCoord{Row: r, Col: c}, true
			}
		}
	}
	return domain.CellCoord{}, false
}
