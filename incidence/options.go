// SPDX-License-Identifier: MIT
// Package: lvdesign/incidence
//
// options.go: functional options for New and FromMatrix.

package incidence

// Option customizes a Structure at construction time.
type Option func(*config)

type config struct {
	name string
}

// defaultName is used when WithName is not given.
const defaultName = "IncidenceStructure"

// WithName sets the display name. An empty name keeps the default.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

func newConfig(opts ...Option) config {
	c := config{name: defaultName}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
