package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-enum/internal/domain"
	"svw.info/sudoku-enum/internal/ports"
)

type Service struct {
	Enumerator ports.Enumerator
	Validator  ports.Validator
	Storage    ports.Storage
}

func NewService(e ports.Enumerator, v ports.Validator, st ports.Storage) *Service {
	return &Service{Enumerator: e, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Enumerate(ctx context.Context, g *domain.Grid) ([]domain.Solution, ports.Stats, error) {
	if u.Enumerator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Enumerator.Enumerate(ctx, g)
}

// EnumerateUpTo collects at most limit solutions (unlimited when limit <= 0)
// and reports whether the search was cut short by the cap.
func (u *Service) EnumerateUpTo(ctx context.Context, g *domain.Grid, limit int) ([]domain.Solution, bool, ports.Stats, error) {
	if u.Enumerator == nil {
		return nil, false, ports.Stats{}, errNotConfigured
	}
	var out []domain.Solution
	truncated := false
	st, err := u.Enumerator.EnumerateFunc(ctx, g, func(s domain.Solution) bool {
		out = append(out, s)
		if limit > 0 && len(out) >= limit {
			truncated = true
			return false
		}
		return true
	})
	return out, truncated, st, err
}

// Count walks the full search without holding any solution in memory.
func (u *Service) Count(ctx context.Context, g *domain.Grid) (int, ports.Stats, error) {
	if u.Enumerator == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	st, err := u.Enumerator.EnumerateFunc(ctx, g, func(domain.Solution) bool { return true })
	return st.Solutions, st, err
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
