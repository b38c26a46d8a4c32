package tweet

import (
	"context"
	"sync"
)

// Summary aggregates tweets of a municipality.
type Summary struct {
	Municipality   string         `json:"municipality"`
	Count          int            `json:"count"`
	AvgTemperature float64        `json:"avgTemperature"`
	AvgHumidity    float64        `json:"avgHumidity"`
	Weather        map[string]int `json:"weather"`
}

// Recorder accepts a tweet and returns its sequence number.
type Recorder interface {
	RecordTweet(ctx context.Context, p Payload) (int, error)
}

// Summarizer aggregates received tweets of a municipality.
type Summarizer interface {
	Summary(ctx context.Context, municipality string) (Summary, error)
}

// Clearer removes all tweets and returns number of affected items.
type Clearer interface {
	ClearTweets(ctx context.Context) (int, error)
}

// Tally keeps tweet aggregates in memory.
type Tally struct {
	mu    sync.Mutex
	seq   int
	total int
	data  map[string]*tally
}

type tally struct {
	count       int
	temperature int
	humidity    int
	weather     map[string]int
}

// RecordTweet counts a tweet.
func (t *Tally) RecordTweet(_ context.Context, p Payload) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.data == nil {
		t.data = make(map[string]*tally)
	}

	m := t.data[p.Municipality]
	if m == nil {
		m = &tally{weather: make(map[string]int)}
		t.data[p.Municipality] = m
	}

	m.count++
	m.temperature += p.Temperature
	m.humidity += p.Humidity
	m.weather[p.Weather]++

	t.seq++
	t.total++

	return t.seq, nil
}

// Summary returns aggregates of a municipality, unknown municipality has zero count.
func (t *Tally) Summary(_ context.Context, municipality string) (Summary, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Summary{
		Municipality: municipality,
		Weather:      map[string]int{},
	}

	m := t.data[municipality]
	if m == nil {
		return s, nil
	}

	s.Count = m.count
	s.AvgTemperature = float64(m.temperature) / float64(m.count)
	s.AvgHumidity = float64(m.humidity) / float64(m.count)

	for w, c := range m.weather {
		s.Weather[w] = c
	}

	return s, nil
}

// ClearTweets drops all aggregates, sequence numbers keep growing.
func (t *Tally) ClearTweets(_ context.Context) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	affected := t.total
	t.total = 0
	t.data = nil

	return affected, nil
}

// TweetRecorder implements service provider.
func (t *Tally) TweetRecorder() Recorder {
	if t == nil {
		panic("empty Tally")
	}

	return t
}

// TweetSummarizer implements service provider.
func (t *Tally) TweetSummarizer() Summarizer {
	return t
}

// TweetClearer implements service provider.
func (t *Tally) TweetClearer() Clearer {
	return t
}
