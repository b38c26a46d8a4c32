package usecase

import (
	"context"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/vearutop/weather-tweet-load/internal/domain/tweet"
)

// Clear removes all received tweets.
func Clear(deps interface {
	TweetClearer() tweet.Clearer
},
) usecase.Interactor {
	type clearOutput struct {
		Affected int `json:"affected"`
	}

	u := usecase.NewInteractor(func(ctx context.Context, _ struct{}, out *clearOutput) error {
		affected, err := deps.TweetClearer().ClearTweets(ctx)

		out.Affected = affected

		return err
	})

	u.SetDescription("Clear removes all received tweets.")
	u.SetTags("Tweets")
	u.SetExpectedErrors(status.Unknown)

	return u
}
