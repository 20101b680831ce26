package flip

import (
	"github.com/osuushi/edgeflip/geom"
	"github.com/osuushi/edgeflip/palette"
)

const (
	DefaultFlipChance  = 0.02
	DefaultMaxAttempts = 16
)

type options struct {
	flipChance  float64
	increment   geom.Increment
	palette     palette.Palette
	maxAttempts int
}

func defaultOptions() options {
	return options{
		flipChance:  DefaultFlipChance,
		increment:   geom.DefaultIncrement,
		palette:     palette.Default,
		maxAttempts: DefaultMaxAttempts,
	}
}

type Option func(*options)

// WithFlipChance sets the probability that a tick starts a new flip. Values
// outside [0, 1] are clamped.
func WithFlipChance(chance float64) Option {
	return func(o *options) {
		if chance < 0 {
			chance = 0
		} else if chance > 1 {
			chance = 1
		}
		o.flipChance = chance
	}
}

// WithAngularStep sets how many radians a flip on a circular path covers per
// tick.
func WithAngularStep(radians float64) Option {
	return func(o *options) {
		if radians > 0 {
			o.increment.Angle = radians
		}
	}
}

// WithLinearStep sets how many pixels of x a flip on a straight path covers
// per tick.
func WithLinearStep(pixels float64) Option {
	return func(o *options) {
		if pixels > 0 {
			o.increment.X = pixels
		}
	}
}

func WithPalette(p palette.Palette) Option {
	return func(o *options) {
		if len(p) > 0 {
			o.palette = p
		}
	}
}

// WithMaxAttempts bounds how many source triangles a tick tries before giving
// up on starting a flip.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}
