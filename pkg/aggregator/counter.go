package aggregator

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"tftstats/pkg/tft"
)

// State of a aggregator, counters only exist once initialized.
type State int

const (
	Uninitialized State = iota
	Initialized
)

func (s State) String() string {
	if s == Initialized {
		return "initialized"
	}
	return "uninitialized"
}

// Counter counts occurrences by key.
type Counter map[string]int

func (c Counter) Inc(key string) {
	c[key]++
}

// Plain map copy used on exports.
func (c Counter) export() map[string]int {
	return maps.Clone(map[string]int(c))
}

// CombinationKey renders a item list as [1, 2, 3].
// Callers must sort the list so equal loadouts share a key.
func CombinationKey(items []int) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = strconv.Itoa(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Read a counter from a exported mapping, accepting the exported form and its JSON decoded form.
// Failures are recorded on the reader.
func readCounter(r *tft.Reader, key string) Counter {
	value, ok := r.Value(key)
	if !ok {
		return nil
	}

	switch counts := value.(type) {
	case Counter:
		return Counter(maps.Clone(map[string]int(counts)))
	case map[string]int:
		return Counter(maps.Clone(counts))
	case map[string]any:
		counter := make(Counter, len(counts))
		for countKey, count := range counts {
			number, ok := tft.ToInt(count)
			if !ok {
				r.Fail(fmt.Sprintf("%s.%s", key, countKey), "expected integer")
				return nil
			}
			counter[countKey] = number
		}
		return counter
	}

	r.Fail(key, "expected object")
	return nil
}
