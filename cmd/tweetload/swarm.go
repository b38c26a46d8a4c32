package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin"
	"github.com/bool64/zapctxd"
	"github.com/vearutop/weather-tweet-load/internal/scenario"
	"github.com/vearutop/weather-tweet-load/internal/swarm"
	"go.uber.org/zap"
)

func addSwarmCommand(app *kingpin.Application, sc scenario.Scenario, seed *uint64, out io.Writer) {
	var (
		cfg     swarm.Config
		timeout time.Duration
		verbose bool
	)

	cmd := app.Command("swarm", "Run simulated users submitting tweets with a random pause.")

	cmd.Flag("host", "Base URL of ingestion service.").
		Envar("TWEETLOAD_HOST").Default("http://localhost:8080").StringVar(&cfg.Host)
	cmd.Flag("users", "Number of simulated users.").
		Envar("TWEETLOAD_USERS").Default("10").IntVar(&cfg.Users)
	cmd.Flag("spawn-rate", "Users started per second.").
		Envar("TWEETLOAD_SPAWN_RATE").Default("1").Float64Var(&cfg.SpawnRate)
	cmd.Flag("run-time", "Run duration, 0 to run until interrupted.").
		Envar("TWEETLOAD_RUN_TIME").Default("1m").DurationVar(&cfg.RunTime)
	cmd.Flag("request-timeout", "HTTP request timeout.").
		Default("10s").DurationVar(&timeout)
	cmd.Flag("verbose", "Log every failed request.").BoolVar(&verbose)

	cmd.Action(func(_ *kingpin.ParseContext) error {
		cfg.Seed = *seed

		return runSwarm(cfg, sc, timeout, verbose, out)
	})
}

func runSwarm(cfg swarm.Config, sc scenario.Scenario, timeout time.Duration, verbose bool, out io.Writer) error {
	lvl := zap.InfoLevel
	if verbose {
		lvl = zap.DebugLevel
	}

	logger := zapctxd.New(zapctxd.Config{
		Level:   lvl,
		DevMode: true,
		Output:  os.Stderr,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	r := swarm.Runner{
		Config:   cfg,
		Scenario: sc,
		Client:   newClient(timeout, cfg.Users),
		Logger:   logger,
	}

	rep, err := r.Run(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, rep.String())

	return err
}

func newClient(timeout time.Duration, users int) *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.MaxIdleConnsPerHost = users

	return &http.Client{
		Timeout:   timeout,
		Transport: tr,
	}
}

func addSampleCommand(app *kingpin.Application, sc scenario.Scenario, seed *uint64, out io.Writer) {
	var n int

	cmd := app.Command("sample", "Print random payloads as JSON lines.")
	cmd.Flag("count", "Number of payloads.").Default("10").IntVar(&n)

	cmd.Action(func(_ *kingpin.ParseContext) error {
		return printSamples(sc, *seed, n, out)
	})
}

func printSamples(sc scenario.Scenario, seed uint64, n int, out io.Writer) error {
	g, err := sc.NewGenerator(seed)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)

	for i := 0; i < n; i++ {
		if err := enc.Encode(g.Generate()); err != nil {
			return err
		}
	}

	return nil
}
