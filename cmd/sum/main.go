package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/abevier/result/internal/calc"
	"github.com/abevier/result/internal/logging"
	"github.com/abevier/result/results"
)

// ErrUsage is the class of errors caused by bad command line input.
var ErrUsage = errs.Class("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newApp().RunContext(ctx, os.Args)
	stop()

	if err != nil {
		log.Fatalf("sum: %v", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "sum",
		Usage:     "add two numbers",
		ArgsUsage: "A B",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:    "fallback",
				Aliases: []string{"f"},
				Usage:   "print this value instead of failing when an operand is not a number",
				EnvVars: []string{"SUM_FALLBACK"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"SUM_LOG_LEVEL"},
			},
		},
		Action: cmdSum,
	}
}

func cmdSum(cctx *cli.Context) error {
	logger, err := logging.New(cctx.String("log-level"))
	if err != nil {
		return ErrUsage.Wrap(err)
	}
	defer func() { _ = logger.Sync() }()

	if cctx.NArg() != 2 {
		return ErrUsage.New("expected 2 operands, got %d", cctx.NArg())
	}

	a, b := cctx.Args().Get(0), cctx.Args().Get(1)
	r := calc.AddStrings(a, b)
	logger.Debug("computed sum", zap.String("a", a), zap.String("b", b), logging.Result("result", r))

	if cctx.IsSet("fallback") {
		return printSum(cctx, r.Or(cctx.Float64("fallback")))
	}

	// the mapper always returns an error, so a caught value is one
	sum := results.Catch(func() any {
		return r.ThrowMap(func(msg string) error {
			return errs.New("cannot add %q and %q: %s", a, b, msg)
		})
	})

	if raised, failed := sum.Failure(); failed {
		logger.Debug("caught raised value", logging.Panic(raised))
		return raised.(error)
	}

	v, _ := sum.Value()
	return printSum(cctx, v)
}

func printSum(cctx *cli.Context, v any) error {
	_, err := fmt.Fprintln(cctx.App.Writer, v)
	return err
}
