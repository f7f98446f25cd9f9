package ports

import (
	"context"
	"time"

	"svw.info/sudoku-enum/internal/domain"
)

// Stats captures performance characteristics of a search.
type Stats struct {
	Nodes     int
	Solutions int
	Duration  time.Duration
}

// Enumerator exhaustively searches a grid for every valid completion.
type Enumerator interface {
	// Enumerate returns all solutions in discovery order. The grid is used
	// as scratch space during the search and restored before returning.
	Enumerate(ctx context.Context, g *domain.Grid) ([]domain.Solution, Stats, error)
	// EnumerateFunc yields each solution as it is found; yield returning
	// false abandons the rest of the search.
	EnumerateFunc(ctx context.Context, g *domain.Grid, yield func(domain.Solution) bool) (Stats, error)
}

// Validator performs fast constraint checks (row/col/box) on the givens.
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
