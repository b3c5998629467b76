// Command vrpsolve is the CLI entry point: "solve" runs one request from a
// JSON file and prints the result to stdout, "serve" starts the HTTP API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/routekit/vrpkit/api"
	"github.com/routekit/vrpkit/cache"
	"github.com/routekit/vrpkit/solver"
	"github.com/routekit/vrpkit/storage"
	"github.com/routekit/vrpkit/telemetry"
	"golang.org/x/time/rate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "solve":
		err = runSolve(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "vrpsolve:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: vrpsolve solve [flags] <input.json>")
	fmt.Fprintln(os.Stderr, "       vrpsolve serve [flags]")
}

func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	nbSearches := fs.Int("searches", 8, "number of parameter points to try")
	depth := fs.Int("depth", 10, "local-search stale-round budget")
	threads := fs.Int("threads", 4, "worker concurrency")
	timeout := fs.Duration("timeout", 30*time.Second, "wall-clock budget")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("solve requires exactly one input file argument")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var req api.SolveRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	in, err := api.BuildInput(req)
	if err != nil {
		return fmt.Errorf("build problem: %w", err)
	}

	opts := solver.Options{
		NBSearches: *nbSearches,
		Depth:      *depth,
		NBThreads:  *threads,
		Timeout:    *timeout,
		Logger:     telemetry.New(),
	}

	result, err := solver.Solve(context.Background(), in, opts)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "HTTP listen address")
	sqlitePath := fs.String("db", "vrpkit.db", "SQLite database path (embedded persistence backend)")
	redisAddr := fs.String("redis", "", "Redis address for result caching (disabled when empty)")
	rps := fs.Float64("rate-limit", 10, "per-IP requests/second allowed on /solve (0 disables)")
	burst := fs.Int("rate-burst", 20, "per-IP token bucket burst size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.OpenSQLiteStore(*sqlitePath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	var solCache *cache.SolutionCache
	if *redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: *redisAddr})
		defer redisClient.Close()
		solCache = cache.NewSolutionCache(redisClient, 10*time.Minute)
	}

	log := telemetry.New()
	srv := api.NewServer(store, solCache, log, solver.Options{Logger: log}, rate.Limit(*rps), *burst)

	log.Info("serving", "addr", *addr)
	return srv.Listen(*addr)
}
