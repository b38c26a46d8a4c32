package usecase

import (
	"context"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/vearutop/weather-tweet-load/internal/domain/tweet"
)

// Summary creates use case interactor to aggregate tweets of a municipality.
func Summary(deps interface {
	TweetSummarizer() tweet.Summarizer
},
) usecase.Interactor {
	type summaryInput struct {
		Municipality string `query:"municipality" required:"true" example:"mixco"`
	}

	u := usecase.NewInteractor(func(ctx context.Context, in summaryInput, out *tweet.Summary) error {
		s, err := deps.TweetSummarizer().Summary(ctx, in.Municipality)

		*out = s

		return err
	})

	u.SetDescription("Summary aggregates received tweets of a municipality.")
	u.SetTags("Tweets")
	u.SetExpectedErrors(status.Unknown, status.InvalidArgument)

	return u
}
