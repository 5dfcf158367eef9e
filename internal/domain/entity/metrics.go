package entity

import (
	"encoding/json"
	"sort"
	"strconv"
)

const (
	// DisplayNameKey is the reserved column holding the account display name.
	DisplayNameKey = "acctName"
	// UnknownType replaces a segregation field value that is missing from a record.
	UnknownType = "unknownType"
)

// Counts maps a metric name to its tally.
type Counts map[string]int

// Inc adds one to key.
func (c Counts) Inc(key string) {
	c[key]++
}

// Merge adds every tally of other into c. Overlapping keys are summed.
func (c Counts) Merge(other Counts) {
	for k, v := range other {
		c[k] += v
	}
}

// Total is the sum of all tallies.
func (c Counts) Total() int {
	total := 0
	for _, v := range c {
		total += v
	}
	return total
}

// MetricMap holds the billable item counts collected for a single account.
type MetricMap struct {
	DisplayName string
	Counts      Counts
}

// NewMetricMap creates an empty MetricMap for the given display name.
func NewMetricMap(displayName string) MetricMap {
	return MetricMap{DisplayName: displayName, Counts: Counts{}}
}

// Keys returns DisplayNameKey followed by the metric names in lexical order.
func (m MetricMap) Keys() []string {
	keys := make([]string, 0, len(m.Counts)+1)
	for k := range m.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return append([]string{DisplayNameKey}, keys...)
}

// Count returns the tally for a metric name.
func (m MetricMap) Count(key string) (int, bool) {
	v, ok := m.Counts[key]
	return v, ok
}

// Value returns the report cell for a column. Unknown columns report ok=false.
func (m MetricMap) Value(key string) (string, bool) {
	if key == DisplayNameKey {
		return m.DisplayName, true
	}
	v, ok := m.Counts[key]
	if !ok {
		return "", false
	}
	return strconv.Itoa(v), true
}

// MarshalJSON flattens the map so the display name sits next to the counts.
func (m MetricMap) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(m.Counts)+1)
	for k, v := range m.Counts {
		flat[k] = v
	}
	flat[DisplayNameKey] = m.DisplayName
	return json.Marshal(flat)
}
