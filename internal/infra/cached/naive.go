package cached

import (
	"context"
	"sync"
	"time"

	"github.com/bool64/cache"
	"github.com/bool64/stats"
	"github.com/vearutop/weather-tweet-load/internal/domain/tweet"
)

const naiveName = "summaries-naive"

// NaiveSummarizer keeps summaries in a map with a lock.
type NaiveSummarizer struct {
	mu       sync.RWMutex
	ttl      time.Duration
	data     map[string]summaryEntry
	upstream tweet.Summarizer
	stats    stats.Tracker
}

type summaryEntry struct {
	value   tweet.Summary
	expires time.Time
}

// NewNaiveSummarizer creates summarizer with a naive cache.
func NewNaiveSummarizer(upstream tweet.Summarizer, ttl time.Duration, stats stats.Tracker) *NaiveSummarizer {
	return &NaiveSummarizer{
		ttl:      ttl,
		data:     map[string]summaryEntry{},
		upstream: upstream,
		stats:    stats,
	}
}

// TweetSummarizer implements service provider.
func (s *NaiveSummarizer) TweetSummarizer() tweet.Summarizer {
	return s
}

// Summary returns cached summary or refreshes it from upstream.
func (s *NaiveSummarizer) Summary(ctx context.Context, municipality string) (tweet.Summary, error) {
	s.mu.RLock()
	val, found := s.data[municipality]
	s.mu.RUnlock()

	if !found {
		s.stats.Add(ctx, cache.MetricMiss, 1, "name", naiveName)
	}

	expired := found && val.expires.Before(time.Now())
	if expired {
		s.stats.Add(ctx, cache.MetricExpired, 1, "name", naiveName)
	}

	if !found || expired {
		s.stats.Add(ctx, cache.MetricWrite, 1, "name", naiveName)

		sum, err := s.upstream.Summary(ctx, municipality)
		if err != nil {
			s.stats.Add(ctx, cache.MetricFailed, 1, "name", naiveName)

			return sum, err
		}

		val.value = sum
		val.expires = time.Now().Add(s.ttl)

		s.mu.Lock()
		defer s.mu.Unlock()

		s.data[municipality] = val

		s.stats.Set(ctx, cache.MetricItems, float64(len(s.data)), "name", naiveName)

		return val.value, nil
	}

	s.stats.Add(ctx, cache.MetricHit, 1, "name", naiveName)

	return val.value, nil
}
