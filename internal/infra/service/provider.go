package service

import (
	"github.com/vearutop/weather-tweet-load/internal/domain/tweet"
)

// TweetRecorderProvider is a service provider.
type TweetRecorderProvider interface {
	TweetRecorder() tweet.Recorder
}

// TweetSummarizerProvider is a service provider.
type TweetSummarizerProvider interface {
	TweetSummarizer() tweet.Summarizer
}

// TweetClearerProvider is a service provider.
type TweetClearerProvider interface {
	TweetClearer() tweet.Clearer
}
