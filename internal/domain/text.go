package domain

import (
	"fmt"
	"strings"
)

// ParseGrid reads the plain text puzzle form: 81 cells in row-major order,
// where '1'-'9' is a given, and '0' or '.' an empty cell. Whitespace and
// box separator characters ('|', '-', '+') are ignored, so both the compact
// one-line form and pretty-printed grids parse.
func ParseGrid(s string) (*Grid, error) {
	var g Grid
	i := 0
	for _, ch := range s {
		switch {
		case ch == '.' || ch == '0':
			if i >= 81 {
				return nil, fmt.Errorf("parse grid: more than 81 cells")
			}
			i++
		case ch >= '1' && ch <= '9':
			if i >= 81 {
				return nil, fmt.Errorf("parse grid: more than 81 cells")
			}
			g[i/9][i%9] = uint8(ch - '0')
			i++
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '|' || ch == '-' || ch == '+':
			// separator, skip
		default:
			return nil, fmt.Errorf("parse grid: unexpected character %q", ch)
		}
	}
	if i != 81 {
		return nil, fmt.Errorf("parse grid: got %d cells, want 81", i)
	}
	return &g, nil
}

func render(m *[9][9]uint8) string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			b.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				b.WriteString("| ")
			}
			if m[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + m[r][c])
			}
			if c < 8 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the grid in the boxed console form, '.' for empty cells.
func (g Grid) String() string { return render((*[9][9]uint8)(&g)) }

// String renders the solution in the boxed console form.
func (s Solution) String() string { return render((*[9][9]uint8)(&s)) }
