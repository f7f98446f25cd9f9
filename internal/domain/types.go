package domain

// Grid is the 9x9 working matrix; 0 marks an empty cell, 1-9 a digit.
// The solver mutates it in place during search and restores it before
// returning, so the caller keeps ownership for its whole lifetime.
type Grid [9][9]uint8

// Solution is a fully filled, constraint-valid snapshot of a Grid.
// It is copied once when found and never mutated afterwards.
type Solution [9][9]uint8

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Givens counts the non-zero cells.
func (g *Grid) Givens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Puzzle is a persisted grid of givens with metadata. SolutionCount is the
// enumerated total when known, -1 when the puzzle has not been enumerated.
type Puzzle struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	Grid          Grid   `json:"grid"`
	SolutionCount int    `json:"solutionCount"`
	CreatedAt     int64  `json:"createdAt,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	Givens        int    `json:"givens"`
	SolutionCount int    `json:"solutionCount"`
	CreatedAt     int64  `json:"createdAt"`
}
