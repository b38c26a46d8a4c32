package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/alecthomas/kingpin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/plt/nethttp"
	"github.com/vearutop/weather-tweet-load/internal/domain/tweet"
	"github.com/vearutop/weather-tweet-load/internal/scenario"
)

func TestPrepareJobs(t *testing.T) {
	sc := scenario.Default()
	nj := &nethttp.JobProducer{}

	require.NoError(t, prepareJobs(sc, 1, nj))
	require.NotNil(t, nj.PrepareRequest)

	req, err := http.NewRequest(http.MethodGet, "http://localhost:8080/", nil)
	require.NoError(t, err)

	require.NoError(t, nj.PrepareRequest(0, req))

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "http://localhost:8080/api/tweets", req.URL.String())
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)

	var p tweet.Payload

	require.NoError(t, json.Unmarshal(body, &p))
	assert.NoError(t, sc.Domain.Validate(context.Background(), p))
}

func TestPrepareJobs_unsupported(t *testing.T) {
	type fastJobProducer struct{}

	err := prepareJobs(scenario.Default(), 0, &fastJobProducer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUnsupportedProducer))
	assert.Contains(t, err.Error(), "fastJobProducer")
}

func TestSampleCommand(t *testing.T) {
	sc := scenario.Default()
	out := bytes.NewBuffer(nil)
	app := kingpin.New("tweetload", "")

	var seed uint64

	addSeedFlag(app, &seed)
	addSampleCommand(app, sc, &seed, out)

	cmd, err := app.Parse([]string{"--tweet-seed", "5", "sample", "--count", "3"})
	require.NoError(t, err)
	assert.Equal(t, "sample", cmd)
	assert.Equal(t, uint64(5), seed)

	expected := bytes.NewBuffer(nil)
	require.NoError(t, printSamples(sc, 5, 3, expected))

	assert.Equal(t, expected.String(), out.String())
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 3)
}
