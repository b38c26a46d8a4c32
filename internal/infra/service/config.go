package service

import (
	"github.com/bool64/brick"
	"github.com/bool64/brick/database"
	"github.com/bool64/brick/jaeger"
)

// Name is the name of this application or service.
const Name = "weather-tweet-load"

// Config defines application configuration.
type Config struct {
	brick.BaseConfig

	Cache   string `split_words:"true" default:"advanced" enum:"none,naive,advanced"`
	Storage string `split_words:"true" default:"memory" enum:"memory,sqlite,mysql"`

	Database database.Config `split_words:"true"`
	Jaeger   jaeger.Config   `split_words:"true"`
}
