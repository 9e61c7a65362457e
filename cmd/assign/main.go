package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/gokatarajesh/exam-assembler/internal/app"
	"github.com/gokatarajesh/exam-assembler/internal/config"
	"github.com/gokatarajesh/exam-assembler/internal/logging"
)

func main() {
	examFlag := flag.Int64("exam", 0, "ID of the exam to fill with questions (or pass it as the first argument)")
	flag.Parse()

	examID, err := resolveExamID(*examFlag, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "usage: assign <exam_id> | assign -exam <id>")
		os.Exit(2)
	}

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load("configs/.env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, examID))
}

func run(ctx context.Context, examID int64) int {
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}
	logger := logging.NewWithWriter(os.Stderr, cfg.Name, cfg.Env).With().Str("component", "assign").Logger()

	core, err := app.NewCore(ctx, cfg, logger, nil)
	if err != nil {
		logger.Error().Err(err).Msg("bootstrap failed")
		return 1
	}
	defer core.Close()

	assignment, err := core.Exams.Assign(ctx, examID)
	return report(logger, examID, assignment, err)
}

// resolveExamID accepts the exam ID from -exam or as the single positional argument.
func resolveExamID(flagValue int64, args []string) (int64, error) {
	switch {
	case len(args) > 1:
		return 0, fmt.Errorf("expected one exam id, got %d arguments", len(args))
	case len(args) == 1 && flagValue != 0:
		return 0, errors.New("exam id given both as -exam and as an argument")
	case len(args) == 1:
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return 0, fmt.Errorf("invalid exam id %q", args[0])
		}
		return id, nil
	case flagValue <= 0:
		return 0, errors.New("exam id is required")
	default:
		return flagValue, nil
	}
}
