package history

import (
	"fmt"
	"time"
)

// Record represents a single evaluated run preserved in the user's history.
type Record struct {
	Kind      string    `json:"kind"`
	Input     string    `json:"input"`
	Result    string    `json:"result"`
	Runs      int       `json:"runs"`
	LastRunAt time.Time `json:"last_run_at"`
}

func (r *Record) encode() string {
	return fmt.Sprintf("%s (%s)", r.Input, r.Kind)
}

func (r *Record) String() string {
	return fmt.Sprintf("%s %q => %s", r.Kind, r.Input, r.Result)
}

func newRecord(kind, input, result string) *Record {
	return &Record{
		Kind:      kind,
		Input:     input,
		Result:    result,
		Runs:      1,
		LastRunAt: time.Now(),
	}
}
