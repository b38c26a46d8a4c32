// Package swarm runs simulated users that repeatedly submit weather tweets.
package swarm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
	"github.com/vearutop/weather-tweet-load/internal/scenario"
)

// ErrInvalidConfig is returned when run can not be started with a configuration.
var ErrInvalidConfig = errors.New("invalid swarm config")

// Config defines a run.
type Config struct {
	// Host is a base URL of the target, for example http://localhost:8080.
	Host string

	// Users is a number of simulated users.
	Users int

	// SpawnRate is a number of users started per second.
	SpawnRate float64

	// RunTime limits run duration, zero means until context is done.
	RunTime time.Duration

	// Seed makes payloads and pauses reproducible per user, zero means random.
	Seed uint64
}

// Runner spawns simulated users and collects statistics.
type Runner struct {
	Config   Config
	Scenario scenario.Scenario

	// Client is http.DefaultClient if empty.
	Client scenario.Doer

	Logger ctxd.Logger
	Stats  stats.Tracker
}

func (r *Runner) check() error {
	switch {
	case r.Config.Host == "":
		return ctxd.WrapError(context.Background(), ErrInvalidConfig, "empty host")
	case r.Config.Users < 1:
		return ctxd.WrapError(context.Background(), ErrInvalidConfig, "at least one user required",
			"users", r.Config.Users)
	case r.Config.SpawnRate <= 0:
		return ctxd.WrapError(context.Background(), ErrInvalidConfig, "spawn rate must be positive",
			"spawnRate", r.Config.SpawnRate)
	case float64(time.Second)/r.Config.SpawnRate > math.MaxInt64:
		return ctxd.WrapError(context.Background(), ErrInvalidConfig, "spawn rate is too small",
			"spawnRate", r.Config.SpawnRate)
	}

	return r.Scenario.Domain.Check()
}

// Run starts users and blocks until run time elapses or ctx is done.
//
// Users stop between iterations, a request in flight is completed.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if err := r.check(); err != nil {
		return nil, err
	}

	if r.Client == nil {
		r.Client = http.DefaultClient
	}

	if r.Logger == nil {
		r.Logger = ctxd.NoOpLogger{}
	}

	if r.Stats == nil {
		r.Stats = stats.NoOp{}
	}

	start := time.Now()
	stop := ctx

	if r.Config.RunTime > 0 {
		var cancel func()

		stop, cancel = context.WithTimeout(ctx, r.Config.RunTime)
		defer cancel()
	}

	rep := newReport()
	wg := sync.WaitGroup{}

	r.Logger.Info(ctx, "starting swarm",
		"host", r.Config.Host, "users", r.Config.Users, "spawnRate", r.Config.SpawnRate,
		"runTime", r.Config.RunTime.String(), "scenario", r.Scenario.Name)

	r.spawn(ctx, stop, rep, &wg)

	wg.Wait()

	rep.Elapsed = time.Since(start)

	r.Logger.Info(ctx, "swarm finished",
		"requests", rep.Requests, "failures", rep.Failures, "elapsed", rep.Elapsed.String())

	return rep, nil
}

func (r *Runner) spawn(ctx, stop context.Context, rep *Report, wg *sync.WaitGroup) {
	interval := time.Duration(float64(time.Second) / r.Config.SpawnRate)
	if interval <= 0 {
		interval = time.Microsecond
	}

	ticker := time.NewTicker(interval)

	defer ticker.Stop()

	for i := 0; i < r.Config.Users; i++ {
		if i > 0 {
			select {
			case <-stop.Done():
				return
			case <-ticker.C:
			}
		}

		u, err := r.newUser(i)
		if err != nil {
			r.Logger.Error(ctx, "failed to create user", "error", err)

			return
		}

		rep.userStarted()
		r.Stats.Set(ctx, "swarm_users", float64(i+1))

		wg.Add(1)

		go func() {
			defer wg.Done()

			u.run(ctx, stop, rep)
		}()
	}

	r.Logger.Info(ctx, "all users spawned", "users", r.Config.Users)
}

func (r *Runner) newUser(i int) (*user, error) {
	u := &user{id: i, r: r}

	var seed uint64
	if r.Config.Seed != 0 {
		seed = r.Config.Seed + uint64(i)
		u.rnd = rand.New(rand.NewPCG(seed, uint64(i))) //nolint:gosec // Load testing pause.
	}

	g, err := r.Scenario.NewGenerator(seed)
	if err != nil {
		return nil, err
	}

	u.gen = g

	return u, nil
}
