package tweet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/weather-tweet-load/internal/domain/tweet"
)

func TestTally(t *testing.T) {
	ctx := context.Background()
	ta := &tweet.Tally{}

	assert.Equal(t, ta, ta.TweetRecorder())

	n, err := ta.RecordTweet(ctx, tweet.Payload{Municipality: "mixco", Temperature: 20, Humidity: 40, Weather: "rainy"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = ta.RecordTweet(ctx, tweet.Payload{Municipality: "mixco", Temperature: 30, Humidity: 60, Weather: "sunny"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = ta.RecordTweet(ctx, tweet.Payload{Municipality: "guatemala", Temperature: 15, Humidity: 30, Weather: "rainy"})
	require.NoError(t, err)

	s, err := ta.Summary(ctx, "mixco")
	require.NoError(t, err)
	assert.Equal(t, tweet.Summary{
		Municipality:   "mixco",
		Count:          2,
		AvgTemperature: 25,
		AvgHumidity:    50,
		Weather:        map[string]int{"rainy": 1, "sunny": 1},
	}, s)

	s, err = ta.Summary(ctx, "amatitlan")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Count)

	affected, err := ta.ClearTweets(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, affected)

	s, err = ta.Summary(ctx, "mixco")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Count)

	n, err = ta.RecordTweet(ctx, tweet.Payload{Municipality: "mixco", Temperature: 20, Humidity: 40, Weather: "rainy"})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
