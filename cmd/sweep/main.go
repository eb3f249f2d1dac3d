package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"chess-rules/config"
	"chess-rules/movegen"
	"chess-rules/oracle"
	"chess-rules/rules"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code so deferred cleanup runs before exit.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML config file (workers)")
	workers := fs.Int("workers", 0, "Parallel piece checks (defaults to the config value)")
	cpuProf := fs.String("cpuprofile", "", "Write CPU profile to file during run")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(stderr, "creating cpuprofile: %v\n", err)
			return 2
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(stderr, "start cpu profile: %v\n", err)
			return 2
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	pieces, checked, err := sweep(context.Background(), cfg.Workers)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(stderr, "mismatch: %v\n", err)
		return 1
	}

	// Single line: Pieces Squares Checked Time
	fmt.Fprintf(stdout, "%d \t%d \t%d \t%s\n", pieces, len(movegen.StandardBoard.Squares()), checked, elapsed)
	return 0
}

// sweep checks every piece with a reference on every square of the standard
// board, one goroutine per piece. It stops at the first mismatch.
func sweep(ctx context.Context, workers int) (pieces int, checked int64, err error) {
	f := movegen.NewFinder(movegen.StandardBoard)
	squares := movegen.StandardBoard.Squares()
	var count atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, p := range rules.Pieces() {
		if !oracle.HasReference(p) {
			continue
		}
		pieces++
		g.Go(func() error {
			for _, loc := range squares {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := oracle.Check(f, p, loc); err != nil {
					return err
				}
				count.Add(1)
			}
			return nil
		})
	}
	err = g.Wait()
	return pieces, count.Load(), err
}
