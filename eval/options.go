// Package eval provides the implementation for the application's non-interactive, programmable execution mode.
package eval

import (
	"io"

	"github.com/samber/mo"
)

// Options encapsulates the runtime configuration for a single script evaluation.
type Options struct {
	// Out receives the rendered trace.
	Out io.Writer
	// Json switches the output from a human-readable trace to a JSON object.
	Json bool
	// StepLimit optionally bounds the number of operations a script may execute.
	StepLimit mo.Option[int]
}
