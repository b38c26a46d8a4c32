package swarm

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vearutop/dynhist-go"
)

// Report describes outcome of a run.
type Report struct {
	mu sync.Mutex

	Requests int
	Failures int
	Users    int
	Elapsed  time.Duration

	// StatusCodes counts responses by HTTP status.
	StatusCodes map[int]int

	// Errors counts transport errors by message.
	Errors map[string]int

	// Latency collects request durations in milliseconds.
	Latency *dynhist.Collector
}

func newReport() *Report {
	return &Report{
		StatusCodes: make(map[int]int),
		Errors:      make(map[string]int),
		Latency: &dynhist.Collector{
			BucketsLimit: 10,
			WeightFunc:   dynhist.LatencyWidth,
		},
	}
}

// record counts the outcome of a single request and tells if it failed.
func (r *Report) record(code int, err error, took time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Requests++
	r.Latency.Add(float64(took) / float64(time.Millisecond))

	if err != nil {
		r.Failures++
		r.Errors[err.Error()]++

		return true
	}

	r.StatusCodes[code]++

	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		r.Failures++

		return true
	}

	return false
}

func (r *Report) userStarted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Users++
}

// RPS returns average rate of requests per second.
func (r *Report) RPS() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Elapsed <= 0 {
		return 0
	}

	return float64(r.Requests) / r.Elapsed.Seconds()
}

// String renders report.
func (r *Report) String() string {
	rps := r.RPS()

	r.mu.Lock()
	defer r.mu.Unlock()

	b := strings.Builder{}

	fmt.Fprintf(&b, "Users: %d, requests: %d, failures: %d, elapsed: %s, rps: %.1f\n",
		r.Users, r.Requests, r.Failures, r.Elapsed.Round(time.Millisecond), rps)

	if r.Requests > 0 {
		b.WriteString("\nRequest latency percentiles:\n")

		for _, p := range []float64{50, 90, 95, 99, 100} {
			fmt.Fprintf(&b, "%v%%: %.2fms\n", p, r.Latency.Percentile(p))
		}

		b.WriteString("\nRequest latency distribution in ms:\n")
		b.WriteString(r.Latency.String())
		b.WriteString("\n")
	}

	if len(r.StatusCodes) > 0 {
		codes := make([]int, 0, len(r.StatusCodes))
		for c := range r.StatusCodes {
			codes = append(codes, c)
		}

		sort.Ints(codes)

		b.WriteString("\nResponses by status:\n")

		for _, c := range codes {
			fmt.Fprintf(&b, "[%d] %d\n", c, r.StatusCodes[c])
		}
	}

	if len(r.Errors) > 0 {
		msgs := make([]string, 0, len(r.Errors))
		for m := range r.Errors {
			msgs = append(msgs, m)
		}

		sort.Strings(msgs)

		b.WriteString("\nErrors:\n")

		for _, m := range msgs {
			fmt.Fprintf(&b, "%s: %d\n", m, r.Errors[m])
		}
	}

	return b.String()
}
