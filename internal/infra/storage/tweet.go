package storage

import (
	"context"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/sqluct"
	"github.com/bool64/stats"
	"github.com/vearutop/weather-tweet-load/internal/domain/tweet"
)

// TweetSaver saves tweets to database.
type TweetSaver struct {
	Storage *sqluct.Storage
	Stats   stats.Tracker
}

// TweetsTable is the name of the table.
const TweetsTable = "tweets"

// TweetRow describes database mapping.
type TweetRow struct {
	ID           int       `db:"id,omitempty"`
	Municipality string    `db:"municipality"`
	Temperature  int       `db:"temperature"`
	Humidity     int       `db:"humidity"`
	Weather      string    `db:"weather"`
	CreatedAt    time.Time `db:"created_at"`
}

// RecordTweet stores a tweet and returns its id.
func (ts *TweetSaver) RecordTweet(ctx context.Context, p tweet.Payload) (int, error) {
	q := ts.Storage.InsertStmt(TweetsTable, TweetRow{
		Municipality: p.Municipality,
		Temperature:  p.Temperature,
		Humidity:     p.Humidity,
		Weather:      p.Weather,
		CreatedAt:    time.Now(),
	})

	res, err := ts.Storage.Exec(ctx, q)
	if err != nil {
		return 0, ctxd.WrapError(ctx, err, "failed to store tweet")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, ctxd.WrapError(ctx, err, "failed to get tweet id")
	}

	ts.Stats.Add(ctx, "tweets_stored", 1, "municipality", p.Municipality)

	return int(id), nil
}

// Summary aggregates tweets of a municipality.
func (ts *TweetSaver) Summary(ctx context.Context, municipality string) (tweet.Summary, error) {
	s := tweet.Summary{
		Municipality: municipality,
		Weather:      map[string]int{},
	}

	r := ts.Storage.DB().QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(AVG(temperature), 0), COALESCE(AVG(humidity), 0) FROM "+TweetsTable+
			" WHERE municipality = ?", municipality)

	if err := r.Scan(&s.Count, &s.AvgTemperature, &s.AvgHumidity); err != nil {
		return s, ctxd.WrapError(ctx, err, "failed to aggregate tweets", "municipality", municipality)
	}

	if s.Count == 0 {
		return s, nil
	}

	rows, err := ts.Storage.DB().QueryContext(ctx,
		"SELECT weather, COUNT(*) FROM "+TweetsTable+" WHERE municipality = ? GROUP BY weather", municipality)
	if err != nil {
		return s, ctxd.WrapError(ctx, err, "failed to count weather", "municipality", municipality)
	}

	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var (
			w string
			c int
		)

		if err := rows.Scan(&w, &c); err != nil {
			return s, ctxd.WrapError(ctx, err, "failed to scan weather count")
		}

		s.Weather[w] = c
	}

	return s, rows.Err()
}

// ClearTweets removes all entries.
func (ts *TweetSaver) ClearTweets(ctx context.Context) (int, error) {
	res, err := ts.Storage.DeleteStmt(TweetsTable).ExecContext(ctx)
	if err != nil {
		return 0, err
	}

	aff, err := res.RowsAffected()

	return int(aff), err
}

// TweetRecorder implements service provider.
func (ts *TweetSaver) TweetRecorder() tweet.Recorder {
	return ts
}

// TweetSummarizer implements service provider.
func (ts *TweetSaver) TweetSummarizer() tweet.Summarizer {
	return ts
}

// TweetClearer implements service provider.
func (ts *TweetSaver) TweetClearer() tweet.Clearer {
	return ts
}
