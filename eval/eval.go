// Package eval provides the implementation for the application's non-interactive, programmable execution mode.
package eval

import (
	"fmt"
	"io"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/kata-cli/kata/stack"
	"github.com/samber/lo"
)

// Stack Operation Identifiers - these constants define the vocabulary of the script language.
const (
	OpPush  = "push"
	OpPop   = "pop"
	OpTop   = "top"
	OpLen   = "len"
	OpClear = "clear"
)

// knownOps is the complete operation vocabulary, used for validation and suggestions.
var knownOps = []string{OpPush, OpPop, OpTop, OpLen, OpClear}

// Step is a single parsed script operation.
type Step struct {
	Op  string `json:"op"`
	Arg string `json:"arg,omitempty"`
}

// StepResult captures the observable outcome of applying a single step.
type StepResult struct {
	Step
	// Value holds the element returned by pop/top or the count returned by len.
	Value string `json:"value,omitempty"`
	// Stack is the bottom-to-top state after the step was applied.
	Stack []string `json:"stack"`
}

// errUnknownOp builds an error naming the closest known operation.
func errUnknownOp(op string) error {
	closest := lo.MinBy(knownOps, func(a string, b string) bool {
		return levenshtein.Distance(op, a) < levenshtein.Distance(op, b)
	})
	return fmt.Errorf("unknown operation %q, did you mean %q?", op, closest)
}

// Parse translates script lines into validated steps.
// Each line holds one operation; blank lines and surplus whitespace are ignored.
func Parse(lines []string) ([]Step, error) {
	var steps []Step

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		op := strings.ToLower(fields[0])
		switch op {
		case OpPush:
			if len(fields) < 2 {
				return nil, fmt.Errorf("%s requires a value", OpPush)
			}
			steps = append(steps, Step{Op: op, Arg: strings.Join(fields[1:], " ")})
		case OpPop, OpTop, OpLen, OpClear:
			if len(fields) > 1 {
				return nil, fmt.Errorf("%s takes no argument, got %q", op, strings.Join(fields[1:], " "))
			}
			steps = append(steps, Step{Op: op})
		default:
			return nil, errUnknownOp(op)
		}
	}

	return steps, nil
}

// Run parses and applies a stack operation script, rendering its trace to options.Out.
// The returned Output mirrors what was rendered.
func Run(lines []string, options *Options) (*Output, error) {
	steps, err := Parse(lines)
	if err != nil {
		return nil, err
	}

	if limit, ok := options.StepLimit.Get(); ok && len(steps) > limit {
		return nil, fmt.Errorf("script exceeds the step limit: %d > %d", len(steps), limit)
	}

	results, err := apply(steps)
	if err != nil {
		return nil, err
	}

	output := newOutput(steps, results)

	if options.Json {
		return output, writeJson(options.Out, output)
	}
	return output, writeTrace(options.Out, results)
}

// Apply executes a single step against the given stack, returning the value
// yielded by value-producing operations (pop, top, len).
func Apply(s *stack.Stack[string], step Step) (value string, err error) {
	switch step.Op {
	case OpPush:
		s.Push(step.Arg)
	case OpPop:
		item, err := s.Pop()
		if err != nil {
			return "", fmt.Errorf("%s: %w", step.Op, err)
		}
		value = item
	case OpTop:
		item, err := s.Top()
		if err != nil {
			return "", fmt.Errorf("%s: %w", step.Op, err)
		}
		value = item
	case OpLen:
		value = fmt.Sprint(s.Len())
	case OpClear:
		s.Clear()
	}
	return value, nil
}

// apply executes the steps against a fresh stack, recording each outcome.
func apply(steps []Step) ([]StepResult, error) {
	s := stack.New[string]()
	results := make([]StepResult, 0, len(steps))

	for _, step := range steps {
		value, err := Apply(s, step)
		if err != nil {
			return nil, err
		}

		results = append(results, StepResult{
			Step:  step,
			Value: value,
			Stack: s.Items(),
		})
	}

	return results, nil
}

// writeTrace renders a human-readable, line-per-step evaluation trace.
func writeTrace(out io.Writer, results []StepResult) error {
	for _, r := range results {
		line := r.Op
		if r.Arg != "" {
			line += " " + r.Arg
		}
		if r.Value != "" {
			line += " => " + r.Value
		}

		if _, err := fmt.Fprintf(out, "%-24s [%s]\n", line, strings.Join(r.Stack, " ")); err != nil {
			return err
		}
	}
	return nil
}
