package usecase

import (
	"context"
	"strconv"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/vearutop/weather-tweet-load/internal/domain/tweet"
)

type ingestDeps interface {
	CtxdLogger() ctxd.Logger
	StatsTracker() stats.Tracker
	TweetRecorder() tweet.Recorder
}

type ingestInput struct {
	Municipality string `json:"municipality" required:"true" example:"mixco"`
	Temperature  int    `json:"temperature" required:"true" example:"27"`
	Humidity     int    `json:"humidity" required:"true" example:"58"`
	Weather      string `json:"weather" required:"true" example:"rainy"`
}

type ingestOutput struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// IngestTweet creates use case interactor to receive a weather tweet.
func IngestTweet(deps ingestDeps) usecase.Interactor {
	domain := tweet.DefaultDomain()

	u := usecase.NewInteractor(func(ctx context.Context, in ingestInput, out *ingestOutput) error {
		p := tweet.Payload(in)

		if err := domain.Validate(ctx, p); err != nil {
			deps.StatsTracker().Add(ctx, "tweets_rejected", 1)

			return status.Wrap(err, status.InvalidArgument)
		}

		n, err := deps.TweetRecorder().RecordTweet(ctx, p)
		if err != nil {
			return err
		}

		deps.StatsTracker().Add(ctx, "tweets_received", 1, "municipality", p.Municipality, "weather", p.Weather)
		deps.CtxdLogger().Debug(ctx, "tweet received", "seq", n, "tweet", p)

		out.Status = "success"
		out.Message = "Processed (Request #" + strconv.Itoa(n) + ")"

		return nil
	})

	u.SetDescription("Receives a weather tweet.")
	u.SetTags("Tweets")
	u.SetExpectedErrors(status.InvalidArgument, status.Unknown)

	return u
}
