// Package scenario submits weather tweets to an ingestion endpoint.
package scenario

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/vearutop/weather-tweet-load/internal/domain/tweet"
)

// Doer sends HTTP request, *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Wait is an inclusive interval of pause between iterations.
//
// It is applied by a harness, scenario itself never sleeps.
type Wait struct {
	Min time.Duration
	Max time.Duration
}

// Next returns a uniformly distributed pause, nil r means global random source.
func (w Wait) Next(r *rand.Rand) time.Duration {
	if w.Max <= w.Min {
		return w.Min
	}

	n := int64(w.Max-w.Min) + 1

	if r == nil {
		return w.Min + time.Duration(rand.Int64N(n)) //nolint:gosec // Load testing pause.
	}

	return w.Min + time.Duration(r.Int64N(n))
}

// Scenario describes a single iteration of a simulated user.
type Scenario struct {
	Name        string
	Method      string
	Path        string
	ContentType string
	Wait        Wait
	Domain      tweet.Domain
}

// Default returns weather tweet submission scenario.
func Default() Scenario {
	return Scenario{
		Name:        "send_tweet",
		Method:      http.MethodPost,
		Path:        "/api/tweets",
		ContentType: "application/json",
		Wait:        Wait{Min: 100 * time.Millisecond, Max: 500 * time.Millisecond},
		Domain:      tweet.DefaultDomain(),
	}
}

// NewGenerator creates a payload generator for scenario domain.
func (s Scenario) NewGenerator(seed uint64) (*tweet.Generator, error) {
	return tweet.NewGenerator(s.Domain, seed)
}

// NewRequest builds a request to submit payload to baseURL.
func (s Scenario) NewRequest(ctx context.Context, baseURL string, p tweet.Payload) (*http.Request, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, s.Method, strings.TrimSuffix(baseURL, "/")+s.Path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", s.ContentType)

	return req, nil
}

// Send submits a fresh payload with a single request.
//
// Response is returned as is, caller owns its body.
func (s Scenario) Send(ctx context.Context, client Doer, baseURL string, g *tweet.Generator) (*http.Response, error) {
	req, err := s.NewRequest(ctx, baseURL, g.Generate())
	if err != nil {
		return nil, err
	}

	return client.Do(req)
}

// PrepareRequest returns a hook that turns an arbitrary request into a tweet submission.
//
// Target scheme and host of the request are kept.
func (s Scenario) PrepareRequest(g *tweet.Generator) func(i int, req *http.Request) error {
	return func(_ int, req *http.Request) error {
		body, err := json.Marshal(g.Generate())
		if err != nil {
			return err
		}

		req.Method = s.Method
		req.URL.Path = s.Path
		req.URL.RawPath = ""
		req.URL.RawQuery = ""

		if req.Header == nil {
			req.Header = http.Header{}
		}

		req.Header.Set("Content-Type", s.ContentType)

		req.Body = io.NopCloser(bytes.NewReader(body))
		req.ContentLength = int64(len(body))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}

		return nil
	}
}
