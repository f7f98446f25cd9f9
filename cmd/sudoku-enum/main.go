package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"svw.info/sudoku-enum/internal/domain"
	"svw.info/sudoku-enum/internal/solver"
	"svw.info/sudoku-enum/internal/validator"
)

var (
	flagLimit     = flag.Int("limit", 0, "stop after this many solutions (0 = enumerate all)")
	flagCountOnly = flag.Bool("count-only", false, "print only the solution count")
	flagTimeout   = flag.Duration("timeout", 0, "abort the search after this duration (0 = none)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sudoku-enum:", err)
		os.Exit(1)
	}
}

func run() error {
	grid, err := loadGrid()
	if err != nil {
		return err
	}

	if ok, conflicts, _ := validator.New().Validate(context.Background(), grid); !ok {
		return fmt.Errorf("conflicting givens at %v", conflicts)
	}

	ctx := context.Background()
	if *flagTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *flagTimeout)
		defer cancel()
	}

	if !*flagCountOnly {
		fmt.Println("puzzle:")
		fmt.Println(grid)
	}

	n := 0
	st, err := solver.NewExhaustiveSolver().EnumerateFunc(ctx, grid, func(s domain.Solution) bool {
		n++
		if !*flagCountOnly {
			fmt.Printf("solution %d:\n%s\n", n, s)
		}
		return *flagLimit <= 0 || n < *flagLimit
	})
	if err == context.DeadlineExceeded {
		fmt.Printf("timed out after %v: %d solutions so far (%d nodes)\n", st.Duration.Round(time.Millisecond), st.Solutions, st.Nodes)
		return nil
	}
	if err != nil {
		return err
	}
	if *flagLimit > 0 && n >= *flagLimit {
		fmt.Printf("stopped at limit: %d solutions in %v (%d nodes)\n", st.Solutions, st.Duration.Round(time.Microsecond), st.Nodes)
		return nil
	}
	fmt.Printf("found %d solutions in %v (%d nodes)\n", st.Solutions, st.Duration.Round(time.Microsecond), st.Nodes)
	return nil
}

// loadGrid reads the puzzle text from the file argument, or stdin when no
// argument is given.
func loadGrid() (*domain.Grid, error) {
	input := io.Reader(os.Stdin)
	if flag.Arg(0) != "" {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		input = f
	}
	raw, err := io.ReadAll(io.LimitReader(input, 4096))
	if err != nil {
		return nil, err
	}
	return domain.ParseGrid(string(raw))
}
