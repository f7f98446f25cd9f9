package validator

import (
	"context"
	"testing"

	"svw.info/sudoku-enum/internal/domain"
)

func TestValidateCleanGrid(t *testing.T) {
	g := domain.Grid{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
	}
	ok, conf, err := New().Validate(context.Background(), &g)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok || len(conf) != 0 {
		t.Fatalf("clean grid flagged: %v", conf)
	}
}

func TestValidateDuplicates(t *testing.T) {
	cases := []struct {
		name string
		set  func(g *domain.Grid)
	}{
		{"row", func(g *domain.Grid) { g[4][0], g[4][8] = 7, 7 }},
		{"column", func(g *domain.Grid) { g[0][2], g[8][2] = 3, 3 }},
		{"box", func(g *domain.Grid) { g[6][6], g[8][8] = 1, 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g domain.Grid
			tc.set(&g)
			ok, conf, err := New().Validate(context.Background(), &g)
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if ok || len(conf) == 0 {
				t.Fatalf("%s duplicate not flagged", tc.name)
			}
		})
	}
}
