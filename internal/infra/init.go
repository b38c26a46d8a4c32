package infra

import (
	"context"
	"database/sql/driver"
	"time"

	"github.com/bool64/brick"
	"github.com/bool64/brick/database"
	"github.com/bool64/brick/jaeger"
	"github.com/go-sql-driver/mysql"
	"github.com/swaggest/rest/response/gzip"
	"github.com/vearutop/weather-tweet-load/internal/domain/tweet"
	"github.com/vearutop/weather-tweet-load/internal/infra/cached"
	"github.com/vearutop/weather-tweet-load/internal/infra/schema"
	"github.com/vearutop/weather-tweet-load/internal/infra/service"
	"github.com/vearutop/weather-tweet-load/internal/infra/storage"
	mysqlstorage "github.com/vearutop/weather-tweet-load/internal/infra/storage/mysql"
	sqlitestorage "github.com/vearutop/weather-tweet-load/internal/infra/storage/sqlite"
	"modernc.org/sqlite"
)

// summaryTTL is short, summaries change under load.
const summaryTTL = 5 * time.Second

// NewServiceLocator creates application service locator.
func NewServiceLocator(cfg service.Config) (loc *service.Locator, err error) {
	l := &service.Locator{}

	defer func() {
		if err != nil && l != nil && l.LoggerProvider != nil {
			l.CtxdLogger().Error(context.Background(), err.Error())
		}
	}()

	l.BaseLocator, err = brick.NewBaseLocator(cfg.BaseConfig)
	if err != nil {
		return nil, err
	}

	if err = jaeger.Setup(cfg.Jaeger, l.BaseLocator); err != nil {
		return nil, err
	}

	schema.SetupOpenapiCollector(l.OpenAPI)

	l.HTTPServerMiddlewares = append(l.HTTPServerMiddlewares, gzip.Middleware)

	switch cfg.Storage {
	case "mysql", "sqlite":
		if err = setupStorage(l, cfg.Storage, cfg.Database); err != nil {
			return nil, err
		}

		ts := &storage.TweetSaver{
			Storage: l.Storage,
			Stats:   l.StatsTracker(),
		}

		l.TweetRecorderProvider = ts
		l.TweetSummarizerProvider = ts
		l.TweetClearerProvider = ts
	default:
		t := &tweet.Tally{}

		l.TweetRecorderProvider = t
		l.TweetSummarizerProvider = t
		l.TweetClearerProvider = t
	}

	switch cfg.Cache {
	case "naive":
		l.TweetSummarizerProvider = cached.NewNaiveSummarizer(l.TweetSummarizer(), summaryTTL, l.StatsTracker())
	case "advanced":
		summaryCache := brick.MakeCacheOf[tweet.Summary](l.BaseLocator, "summaries", summaryTTL)
		l.TweetSummarizerProvider = cached.NewSummarizer(l.TweetSummarizer(), summaryCache)

		if err := l.TransferCache(context.Background()); err != nil {
			l.CtxdLogger().Warn(context.Background(), "failed to transfer cache", "error", err)
		}
	}

	return l, nil
}

func setupStorage(l *service.Locator, driverName string, cfg database.Config) (err error) {
	var (
		conn driver.Connector
		c    *mysql.Config
	)

	switch driverName {
	case "mysql":
		if c, err = mysql.ParseDSN(cfg.DSN); err != nil {
			return err
		}

		if conn, err = mysql.NewConnector(c); err != nil {
			return err
		}

		l.Storage, err = database.SetupStorage(cfg, l.CtxdLogger(), l.StatsTracker(), "mysql", conn, mysqlstorage.Migrations)
	default:
		conn = dsnConnector{dsn: cfg.DSN, driver: &sqlite.Driver{}}

		l.Storage, err = database.SetupStorage(cfg, l.CtxdLogger(), l.StatsTracker(), "sqlite", conn, sqlitestorage.Migrations)
	}

	return err
}

// dsnConnector adapts driver without own connector.
type dsnConnector struct {
	dsn    string
	driver driver.Driver
}

func (c dsnConnector) Connect(_ context.Context) (driver.Conn, error) {
	return c.driver.Open(c.dsn)
}

func (c dsnConnector) Driver() driver.Driver {
	return c.driver
}
