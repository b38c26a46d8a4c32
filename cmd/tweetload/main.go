// Package main provides weather tweet load generator.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/vearutop/plt/curl"
	"github.com/vearutop/plt/loadgen"
	"github.com/vearutop/plt/nethttp"
	"github.com/vearutop/weather-tweet-load/internal/scenario"
)

// tweetload pushes random weather tweets onto an ingestion endpoint.
//
// With curl command load is driven by plt, any request is rewritten into a tweet submission,
// so target path and method of the URL argument are ignored:
//
//	tweetload --concurrency 50 --number 10000 curl http://localhost:8080
//
// With swarm command a number of simulated users submit tweets with a random pause in between:
//
//	tweetload swarm --host http://localhost:8080 --users 100 --spawn-rate 10 --run-time 1m

// errUnsupportedProducer is returned for plt job producer that can not carry tweets, e.g. with --fast.
var errUnsupportedProducer = errors.New("unsupported plt job producer, only net/http mode can send tweets")

func main() {
	lf := loadgen.Flags{}
	lf.Register()

	sc := scenario.Default()

	var seed uint64

	addSeedFlag(kingpin.CommandLine, &seed)

	curl.AddCommand(&lf, func(lf *loadgen.Flags, f *nethttp.Flags, j loadgen.JobProducer) {
		if err := prepareJobs(sc, seed, j); err != nil {
			log.Fatal(err)
		}
	})

	addSwarmCommand(kingpin.CommandLine, sc, &seed, os.Stdout)
	addSampleCommand(kingpin.CommandLine, sc, &seed, os.Stdout)

	kingpin.Parse()
}

func addSeedFlag(app *kingpin.Application, seed *uint64) {
	app.Flag("tweet-seed", "Seed of random payloads, 0 for random.").
		Envar("TWEETLOAD_SEED").Default("0").Uint64Var(seed)
}

// prepareJobs makes plt job producer submit tweets.
func prepareJobs(sc scenario.Scenario, seed uint64, j interface{}) error {
	nj, ok := j.(*nethttp.JobProducer)
	if !ok {
		return fmt.Errorf("%w: %T", errUnsupportedProducer, j)
	}

	g, err := sc.NewGenerator(seed)
	if err != nil {
		return fmt.Errorf("failed to init generator: %w", err)
	}

	nj.PrepareRequest = sc.PrepareRequest(g)

	return nil
}
