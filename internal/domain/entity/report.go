package entity

import (
	"bytes"
	"encoding/json"
	"iter"
	"sort"

	"github.com/samber/lo"
)

// ReportTable maps account identifiers to their MetricMap, preserving insertion order.
type ReportTable struct {
	order   []string
	entries map[string]MetricMap
}

// NewReportTable creates an empty ReportTable.
func NewReportTable() *ReportTable {
	return &ReportTable{entries: make(map[string]MetricMap)}
}

// Set stores the metrics of an account. Re-setting an account keeps its original position.
func (t *ReportTable) Set(accountID string, metrics MetricMap) {
	if _, ok := t.entries[accountID]; !ok {
		t.order = append(t.order, accountID)
	}
	t.entries[accountID] = metrics
}

// Get returns the metrics stored for an account.
func (t *ReportTable) Get(accountID string) (MetricMap, bool) {
	m, ok := t.entries[accountID]
	return m, ok
}

// Len is the number of accounts in the table.
func (t *ReportTable) Len() int {
	return len(t.order)
}

// AccountIDs returns the account identifiers in insertion order.
func (t *ReportTable) AccountIDs() []string {
	return append([]string(nil), t.order...)
}

// All iterates over the table in insertion order.
func (t *ReportTable) All() iter.Seq2[string, MetricMap] {
	return func(yield func(string, MetricMap) bool) {
		for _, id := range t.order {
			if !yield(id, t.entries[id]) {
				return
			}
		}
	}
}

// Columns returns the union of keys across every MetricMap: DisplayNameKey first,
// then metric names in lexical order. An empty table has no columns.
func (t *ReportTable) Columns() []string {
	if t.Len() == 0 {
		return nil
	}
	var keys []string
	for _, id := range t.order {
		keys = append(keys, lo.Keys(t.entries[id].Counts)...)
	}
	keys = lo.Uniq(keys)
	sort.Strings(keys)
	return append([]string{DisplayNameKey}, keys...)
}

// Rows renders one row per account for the given columns. Missing cells are blank.
func (t *ReportTable) Rows(columns []string) [][]string {
	rows := make([][]string, 0, t.Len())
	for _, m := range t.All() {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i], _ = m.Value(col)
		}
		rows = append(rows, row)
	}
	return rows
}

// MarshalJSON encodes the table as an object whose keys keep insertion order.
func (t *ReportTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range t.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(t.entries[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
