package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
	"github.com/renitt0/Sudoku-Solver/internal/generator"
	"github.com/renitt0/Sudoku-Solver/internal/hint"
	"github.com/renitt0/Sudoku-Solver/internal/ports"
	"github.com/renitt0/Sudoku-Solver/internal/solver"
	"github.com/renitt0/Sudoku-Solver/internal/usecase"
	"github.com/renitt0/Sudoku-Solver/internal/validator"
)

func main() {
	in := flag.String("in", "-", "puzzle file: nine rows of nine cells, 0 or . for empty (- = stdin)")
	mode := flag.String("mode", "solve", "solve|validate|unique|hint|generate")
	engine := flag.String("solver", "backtrack", "solver to use: backtrack|dlx")
	seed := flag.Int64("seed", 0, "generator seed (0 = time-based)")
	diffStr := flag.String("difficulty", "medium", "easy|medium|hard|expert")
	timeout := flag.Duration("timeout", 10*time.Second, "overall search budget")
	maxNodes := flag.Int("max-nodes", 0, "abort backtracking after this many nodes (0 = unlimited)")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*engine)) {
	case "dlx":
		s = solver.NewDLXSolver()
	default:
		bt := solver.NewBacktrackSolver()
		bt.MaxNodes = *maxNodes
		s = bt
	}
	uc := usecase.NewService(s, generator.New(s), validator.New(), hint.NewSingles())

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, logger, uc, *mode, *in, *seed, *diffStr); err != nil {
		logger.Error(*mode, "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, uc *usecase.Service, mode, in string, seed int64, diffStr string) error {
	if mode == "generate" {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		diff := domain.ParseDifficulty(diffStr)
		p, st, err := uc.Generate(ctx, seed, diff)
		if err != nil {
			return err
		}
		logger.Info("generated",
			"seed", seed,
			"difficulty", diff.String(),
			"givens", 81-p.Board.EmptyCount(),
			"nodes", st.Nodes,
			"dur", st.Duration.Round(time.Millisecond),
		)
		fmt.Print(p.Board.String())
		return nil
	}

	board, err := readBoard(in)
	if err != nil {
		return err
	}

	switch mode {
	case "solve":
		// Solve mutates its argument; keep the caller's copy intact.
		work := board.Clone()
		start := time.Now()
		st, err := uc.Solve(ctx, work)
		elapsed := time.Since(start)
		if err != nil {
			return err
		}
		logger.Info("solved", "elapsed", elapsed.Round(time.Millisecond), "nodes", st.Nodes)
		fmt.Print(work.String())
	case "validate":
		ok, conflicts, err := uc.Validate(ctx, board)
		if err != nil {
			return err
		}
		logger.Info("validated", "ok", ok, "conflicts", len(conflicts))
		for _, cc := range conflicts {
			fmt.Printf("conflict at r%d c%d\n", cc.Row, cc.Col)
		}
		if !ok {
			return fmt.Errorf("board has %d conflicting cells", len(conflicts))
		}
	case "unique":
		unique, st, err := uc.Unique(ctx, board)
		if err != nil {
			return err
		}
		logger.Info("uniqueness", "unique", unique, "nodes", st.Nodes)
		fmt.Println(unique)
	case "hint":
		h, found, err := uc.Hint(ctx, board, domain.StrategySingles)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no hint available at this tier")
		}
		fmt.Printf("%s (r%d c%d)\n", h.Message, h.Cells[0].Row, h.Cells[0].Col)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	return nil
}

func readBoard(path string) (*domain.Board, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return domain.ParseBoard(string(data))
}
