package entity

import "fmt"

// Record is one raw item returned by a collection endpoint.
type Record map[string]any

// String returns the value stored under key formatted as a string.
// Absent and null values report ok=false.
func (r Record) String(key string) (string, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Strings returns the string elements of the list stored under key.
// Non-string elements are formatted with fmt.Sprint.
func (r Record) Strings(key string) []string {
	list, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(item))
	}
	return out
}

// Object returns the nested object stored under key.
func (r Record) Object(key string) (Record, bool) {
	switch v := r[key].(type) {
	case map[string]any:
		return Record(v), true
	case Record:
		return v, true
	}
	return nil, false
}
