// Package tweet defines weather tweet domain.
package tweet

import (
	"context"
	"errors"

	"github.com/bool64/ctxd"
)

// ErrInvalidPayload is returned for a payload with a value outside of its domain.
var ErrInvalidPayload = errors.New("invalid tweet payload")

// Payload describes a weather tweet as it is sent over the wire.
type Payload struct {
	Municipality string `json:"municipality"`
	Temperature  int    `json:"temperature"`
	Humidity     int    `json:"humidity"`
	Weather      string `json:"weather"`
}

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

// Contains checks if v is within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Domain defines sets of values a payload is sampled from.
type Domain struct {
	Municipalities []string
	Weathers       []string
	Temperature    Range
	Humidity       Range
}

// DefaultDomain returns values of Guatemala City metropolitan weather tweets.
func DefaultDomain() Domain {
	return Domain{
		Municipalities: []string{"mixco", "guatemala", "amatitlan", "chinautla"},
		Weathers:       []string{"sunny", "cloudy", "rainy", "foggy"},
		Temperature:    Range{Min: 15, Max: 35},
		Humidity:       Range{Min: 30, Max: 90},
	}
}

// Check makes sure every value set can be sampled.
func (d Domain) Check() error {
	switch {
	case len(d.Municipalities) == 0:
		return errors.New("empty municipalities")
	case len(d.Weathers) == 0:
		return errors.New("empty weathers")
	case d.Temperature.Min > d.Temperature.Max:
		return errors.New("inverted temperature range")
	case d.Humidity.Min > d.Humidity.Max:
		return errors.New("inverted humidity range")
	}

	return nil
}

// Sample makes a payload choosing every field independently and uniformly.
//
// intN must return a value in [0, n).
func (d Domain) Sample(intN func(n int) int) Payload {
	return Payload{
		Municipality: d.Municipalities[intN(len(d.Municipalities))],
		Temperature:  d.Temperature.Min + intN(d.Temperature.Max-d.Temperature.Min+1),
		Humidity:     d.Humidity.Min + intN(d.Humidity.Max-d.Humidity.Min+1),
		Weather:      d.Weathers[intN(len(d.Weathers))],
	}
}

// Validate returns ErrInvalidPayload wrapped with details of the first offending field.
func (d Domain) Validate(ctx context.Context, p Payload) error {
	if !contains(d.Municipalities, p.Municipality) {
		return ctxd.WrapError(ctx, ErrInvalidPayload, "unknown municipality", "municipality", p.Municipality)
	}

	if !d.Temperature.Contains(p.Temperature) {
		return ctxd.WrapError(ctx, ErrInvalidPayload, "temperature out of range",
			"temperature", p.Temperature, "min", d.Temperature.Min, "max", d.Temperature.Max)
	}

	if !d.Humidity.Contains(p.Humidity) {
		return ctxd.WrapError(ctx, ErrInvalidPayload, "humidity out of range",
			"humidity", p.Humidity, "min", d.Humidity.Min, "max", d.Humidity.Max)
	}

	if !contains(d.Weathers, p.Weather) {
		return ctxd.WrapError(ctx, ErrInvalidPayload, "unknown weather", "weather", p.Weather)
	}

	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}

	return false
}
