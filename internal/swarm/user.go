package swarm

import (
	"context"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/vearutop/weather-tweet-load/internal/domain/tweet"
)

// user is a simulated user, it submits tweets one after another with a pause.
type user struct {
	id  int
	r   *Runner
	gen *tweet.Generator
	rnd *rand.Rand
}

func (u *user) run(ctx, stop context.Context, rep *Report) {
	s := u.r.Scenario

	// Cancellation is only observed through stop, between iterations.
	reqCtx := context.WithoutCancel(ctx)

	for {
		if stop.Err() != nil {
			return
		}

		start := time.Now()
		resp, err := s.Send(reqCtx, u.r.Client, u.r.Config.Host, u.gen)
		took := time.Since(start)

		code := 0

		if err == nil {
			code = resp.StatusCode

			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}

		failed := rep.record(code, err, took)

		u.r.Stats.Add(ctx, "swarm_requests", 1, "status", strconv.Itoa(code))

		if failed {
			u.r.Stats.Add(ctx, "swarm_failures", 1)
			u.r.Logger.Debug(ctx, "request failed", "user", u.id, "status", code, "error", err)
		}

		select {
		case <-stop.Done():
			return
		case <-time.After(s.Wait.Next(u.rnd)):
		}
	}
}
