// Package history provides the implementation for tracking and persisting evaluated run records.
package history

import (
	"time"

	"github.com/kata-cli/kata/filesystem"
	"github.com/kata-cli/kata/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// cacher provides an abstracted, disk-backed registry for run records.
var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of run records from the persistent store.
func Get() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Save persists a run to the history registry.
// Idempotency: Re-running the same (kind, input) pair increments its run counter instead of duplicating the record.
func Save(kind, input, result string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newRecord(kind, input, result)

	if existing, exists := saved[record.encode()]; exists {
		record.Runs = existing.Runs + 1
	}

	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a specific run record from the history registry.
func Remove(record *Record) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, record.encode())
	return cacher.Set(saved)
}

// List returns records matching the fuzzy filter, most-run first.
// An empty filter matches everything.
func List(filter string) ([]*Record, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := lo.Filter(lo.Values(saved), func(r *Record, _ int) bool {
		return filter == "" || fuzzy.MatchFold(filter, r.Input) || fuzzy.MatchFold(filter, r.Kind)
	})

	slices.SortFunc(records, func(a, b *Record) int {
		if a.Runs != b.Runs {
			return b.Runs - a.Runs // Descending run count
		}
		return int(b.LastRunAt.Sub(a.LastRunAt) / time.Millisecond)
	})

	return records, nil
}
