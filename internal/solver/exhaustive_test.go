package solver

import (
	"testing"

	"svw.info/sudoku-enum/internal/domain"
)

func TestConflictPredicates(t *testing.T) {
	var g domain.Grid
	g[2][7] = 4
	g[5][1] = 9
	g[0][0] = 7 // box corner cell

	if !RowConflict(&g, 2, 4) {
		t.Error("RowConflict missed digit in row 2")
	}
	if RowConflict(&g, 3, 4) {
		t.Error("RowConflict false positive in empty row")
	}
	if !ColumnConflict(&g, 1, 9) {
		t.Error("ColumnConflict missed digit in column 1")
	}
	if ColumnConflict(&g, 1, 8) {
		t.Error("ColumnConflict false positive")
	}
	// (1,2) shares the top-left box with (0,0)
	if !BoxConflict(&g, 1, 2, 7) {
		t.Error("BoxConflict missed digit in box")
	}
	// (1,3) is the neighboring box
	if BoxConflict(&g, 1, 3, 7) {
		t.Error("BoxConflict crossed a box boundary")
	}
	if !GivesConflict(&g, 2, 0, 4) || !GivesConflict(&g, 8, 1, 9) || !GivesConflict(&g, 2, 2, 7) {
		t.Error("GivesConflict missed a row/col/box duplicate")
	}
	if GivesConflict(&g, 8, 8, 1) {
		t.Error("GivesConflict false positive on free cell")
	}
}

func TestFindEmptyCellRowMajor(t *testing.T) {
	g := solved
	cell, ok := FindEmptyCell(&g)
	if ok {
		t.Fatalf("found %v in a full grid", cell)
	}

	// later empty cells must not shadow an earlier one in row-major order
	g[4][2] = 0
	g[2][6] = 0
	g[2][8] = 0
	cell, ok = FindEmptyCell(&g)
	if !ok || cell != (domain.CellCoord{Row: 2, Col: 6}) {
		t.Fatalf("FindEmptyCell = %v, %v; want (2,6)", cell, ok)
	}
}
