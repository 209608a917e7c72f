// Package tabular renders flat records as comma-delimited text.
package tabular

import (
	"fmt"
	"strings"
)

// Column maps a record key to its header title.
type Column struct {
	Key   string
	Title string
}

// Record is one flat row keyed by Column.Key.
type Record map[string]any

// Marshal renders a header row of column titles followed by one row per record,
// rows joined by "\n". A string value containing a comma is wrapped in double
// quotes; no other escaping is applied. Missing and nil values render empty.
func Marshal(columns []Column, records []Record) []byte {
	var b strings.Builder

	for i, c := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.Title)
	}

	for _, rec := range records {
		b.WriteByte('\n')
		for i, c := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(field(rec[c.Key]))
		}
	}

	return []byte(b.String())
}

func field(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		if strings.Contains(val, ",") {
			return `"` + val + `"`
		}
		return val
	case *string:
		if val == nil {
			return ""
		}
		return field(*val)
	default:
		return fmt.Sprint(val)
	}
}
