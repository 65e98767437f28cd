// SPDX-License-Identifier: MIT
// Package: lvdesign/designs
//
// options.go: functional options for the design constructors.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Defaults: check on, deleted point n²+n, name "BlockDesign".
//   • No hidden globals; everything flows through config.

package designs

// Option customizes a constructor. Later options override earlier ones.
type Option func(*config)

// config is the resolved option set; zero values are never used directly,
// newConfig fills in the documented defaults.
type config struct {
	check    bool   // validate before returning
	point    int    // deleted point for PlaneToOA
	hasPoint bool   // point was set explicitly
	name     string // BlockDesign display name
}

const (
	defaultCheck = true
	defaultName  = "BlockDesign"
)

// WithCheck enables or disables post-construction validation. Validation is
// the dominant cost for large planes; disable it when the constructor is
// trusted and speed matters.
func WithCheck(check bool) Option {
	return func(c *config) {
		c.check = check
	}
}

// WithPoint selects the point PlaneToOA deletes. Without it the point
// n² + n is used.
func WithPoint(pt int) Option {
	return func(c *config) {
		c.point, c.hasPoint = pt, true
	}
}

// WithName sets the name of a structure built by BlockDesign. Empty names
// keep the default.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

func newConfig(opts ...Option) config {
	c := config{check: defaultCheck, name: defaultName}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
