package main_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bool64/brick"
	"github.com/bool64/brick/config"
	"github.com/bool64/brick/test"
	"github.com/bool64/httptestbench"
	"github.com/godogx/dbsteps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/vearutop/weather-tweet-load/internal/domain/tweet"
	"github.com/vearutop/weather-tweet-load/internal/infra"
	"github.com/vearutop/weather-tweet-load/internal/infra/nethttp"
	"github.com/vearutop/weather-tweet-load/internal/infra/service"
	"github.com/vearutop/weather-tweet-load/internal/infra/storage"
	"github.com/vearutop/weather-tweet-load/internal/scenario"
	"github.com/vearutop/weather-tweet-load/internal/swarm"
)

func TestFeatures(t *testing.T) {
	var cfg service.Config

	test.RunFeatures(t, "", &cfg, func(tc *test.Context) (*brick.BaseLocator, http.Handler) {
		cfg.ServiceName = service.Name

		sl, err := infra.NewServiceLocator(cfg)
		require.NoError(t, err)

		tc.Database.Instances[dbsteps.Default] = dbsteps.Instance{
			Tables: map[string]interface{}{
				storage.TweetsTable: new(storage.TweetRow),
			},
		}

		return sl.BaseLocator, nethttp.NewRouter(sl)
	})
}

func TestSwarm(t *testing.T) {
	var cfg service.Config

	cfg.ServiceName = service.Name
	cfg.Log.Output = io.Discard
	cfg.ShutdownTimeout = time.Second
	cfg.Storage = "memory"
	cfg.Cache = "none"

	sl, err := infra.NewServiceLocator(cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(nethttp.NewRouter(sl))
	defer srv.Close()

	sc := scenario.Default()
	sc.Wait = scenario.Wait{Min: time.Millisecond, Max: 5 * time.Millisecond}

	r := swarm.Runner{
		Config: swarm.Config{
			Host:      srv.URL,
			Users:     5,
			SpawnRate: 50,
			RunTime:   500 * time.Millisecond,
			Seed:      1,
		},
		Scenario: sc,
		Client:   srv.Client(),
	}

	rep, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, rep.Failures, rep.String())
	assert.Equal(t, rep.Requests, rep.StatusCodes[http.StatusOK])

	total := 0

	for _, m := range tweet.DefaultDomain().Municipalities {
		resp, err := srv.Client().Get(srv.URL + "/api/tweets/summary?municipality=" + m)
		require.NoError(t, err)

		var s tweet.Summary

		require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
		require.NoError(t, resp.Body.Close())

		if s.Count > 0 {
			assert.GreaterOrEqual(t, s.AvgTemperature, 15.0)
			assert.LessOrEqual(t, s.AvgTemperature, 35.0)
			assert.GreaterOrEqual(t, s.AvgHumidity, 30.0)
			assert.LessOrEqual(t, s.AvgHumidity, 90.0)
		}

		total += s.Count
	}

	assert.Equal(t, rep.Requests, total)

	sl.Shutdown()
	require.NoError(t, <-sl.Wait())
}

func benchmarkIngest(b *testing.B, envFile string) {
	b.Helper()

	var cfg service.Config
	cfg.ServiceName = service.Name

	require.NoError(b, config.Load("", &cfg, config.WithOptionalEnvFiles(envFile)))

	sl, err := infra.NewServiceLocator(cfg)
	if err != nil {
		b.Skip(err)
	}

	srv := httptest.NewServer(nethttp.NewRouter(sl))
	defer srv.Close()

	sc := scenario.Default()

	g, err := sc.NewGenerator(0)
	require.NoError(b, err)

	httptestbench.RoundTrip(b, 50,
		func(i int, req *fasthttp.Request) {
			body, err := json.Marshal(g.Generate())
			if err != nil {
				b.Fatal(err)
			}

			req.SetRequestURI(srv.URL + sc.Path)
			req.Header.SetMethod(sc.Method)
			req.Header.SetContentType(sc.ContentType)
			req.SetBody(body)
		},
		func(_ int, resp *fasthttp.Response) bool {
			return resp.StatusCode() == http.StatusOK
		},
	)
}

func BenchmarkIngest(b *testing.B) {
	benchmarkIngest(b, ".env.integration-test")
}

func BenchmarkIngestSQLite(b *testing.B) {
	benchmarkIngest(b, ".env.sqlite")
}
