package storage

import (
	"context"
	"os"
	"testing"

	"svw.info/sudoku-enum/internal/domain"
)

func TestSaveLoadList(t *testing.T) {
	st := NewFS(t.TempDir())
	ctx := context.Background()

	var g domain.Grid
	g[0][0], g[8][8] = 5, 9
	p := &domain.Puzzle{
		ID:            "p1",
		Name:          "two givens",
		Grid:          g,
		SolutionCount: -1,
		CreatedAt:     1234,
	}
	if err := st.Save(ctx, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := st.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Grid != g || got.Name != p.Name || got.SolutionCount != -1 {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	metas, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != "p1" || metas[0].Givens != 2 {
		t.Fatalf("unexpected listing: %+v", metas)
	}
}

func TestSaveRequiresID(t *testing.T) {
	st := NewFS(t.TempDir())
	if err := st.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("Save accepted a puzzle without an ID")
	}
}

func TestLoadMissing(t *testing.T) {
	st := NewFS(t.TempDir())
	if _, err := st.Load(context.Background(), "nope"); !os.IsNotExist(err) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestListEmptyDir(t *testing.T) {
	st := NewFS(t.TempDir() + "/missing")
	metas, err := st.List(context.Background())
	if err != nil || len(metas) != 0 {
		t.Fatalf("List on missing dir: %v, %v", metas, err)
	}
}
