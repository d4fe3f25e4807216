// Package checker manages built-in and custom named text checks.
package checker

// Check is a loaded, runnable text predicate.
type Check interface {
	// Name returns the human-readable check name.
	Name() string
	// ID returns the canonical check identifier.
	ID() string
	// Run reports whether the input satisfies the check.
	Run(input string) (bool, error)
}

// funcCheck adapts a pure Go predicate to the Check interface.
type funcCheck struct {
	name string
	fn   func(string) bool
}

func (c *funcCheck) Name() string {
	return c.name
}

func (c *funcCheck) ID() string {
	return c.name + " builtin"
}

func (c *funcCheck) Run(input string) (bool, error) {
	return c.fn(input), nil
}
