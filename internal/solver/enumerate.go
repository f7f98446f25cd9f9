package solver

import (
	"context"
	"time"

	"svw.info/sudoku-enum/internal/domain"
	"svw.info/sudoku-enum/internal/ports"
)

// Enumerate collects every solution of g in discovery order: empty cells
// filled first-empty-first (row-major), digits tried ascending. The grid is
// scratch space during the search and is restored to its entry state before
// returning, on every path.
func (s *ExhaustiveSolver) Enumerate(ctx context.Context, g *domain.Grid) ([]domain.Solution, ports.Stats, error) {
	var out []domain.Solution
	st, err := s.EnumerateFunc(ctx, g, func(sol domain.Solution) bool {
		out = append(out, sol)
		return true
	})
	return out, st, err
}

// EnumerateFunc yields each solution to yield as it is found. A false
// return from yield abandons the remaining search; the grid is still fully
// restored. An unsolvable grid yields nothing and returns a nil error; a
// grid with no empty cell at all returns ErrGridFull.
func (s *ExhaustiveSolver) EnumerateFunc(ctx context.Context, g *domain.Grid, yield func(domain.Solution) bool) (ports.Stats, error) {
	start := time.Now()
	var st ports.Stats
	if _, ok := FindEmptyCell(g); !ok {
		st.Duration = time.Since(start)
		return st, ErrGridFull
	}
	s.search(ctx, g, yield, &st)
	st.Duration = time.Since(start)
	if err := ctx.Err(); err != nil {
		return st, err
	}
	return st, nil
}

// search tries digits 1-9 at the first empty cell. A filled grid is a leaf
// recorded in place, not a recursion base case: the loop moves on to the
// next digit afterwards. The cell is reset to 0 after the loop regardless
// of outcome, which is what makes the grid a reusable scratch buffer.
// Returns false once the search should stop (yield said so, or ctx is done).
// Precondition: the grid has at least one empty cell.
func (s *ExhaustiveSolver) search(ctx context.Context, g *domain.Grid, yield func(domain.Solution) bool, st *ports.Stats) bool {
	if ctx.Err() != nil {
		return false
	}
	cell, _ := FindEmptyCell(g)
	r, c := cell.Row, cell.Col
	keep := true
	for v := uint8(1); keep && v <= 9; v++ {
		st.Nodes++
		if GivesConflict(g, r, c, v) {
			continue
		}
		g[r][c] = v
		if _, open := FindEmptyCell(g); open {
			keep = s.search(ctx, g, yield, st)
		} else {
			st.Solutions++
			keep = yield(domain.Solution(*g))
		}
	}
	g[r][c] = 0
	return keep
}
