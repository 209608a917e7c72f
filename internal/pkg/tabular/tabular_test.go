package tabular

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMarshal(t *testing.T) {
	columns := []Column{
		{Key: "name", Title: "Name"},
		{Key: "dept", Title: "Department"},
	}

	tests := []struct {
		name    string
		records []Record
		want    string
	}{
		{
			name:    "comma in text is quoted",
			records: []Record{{"name": "Doe, Jane", "dept": "R&D"}},
			want:    "Name,Department\n\"Doe, Jane\",R&D",
		},
		{
			name:    "header only",
			records: nil,
			want:    "Name,Department",
		},
		{
			name:    "missing and nil render empty",
			records: []Record{{"name": "Solo"}, {"name": nil, "dept": "Ops"}},
			want:    "Name,Department\nSolo,\n,Ops",
		},
		{
			name:    "quotes and newlines pass through",
			records: []Record{{"name": `Al "Bud" Lee`, "dept": "Line\nBreak"}},
			want:    "Name,Department\nAl \"Bud\" Lee,Line\nBreak",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(Marshal(columns, tt.records)))
		})
	}
}

func TestMarshal_NonStringValues(t *testing.T) {
	columns := []Column{
		{Key: "n", Title: "N"},
		{Key: "f", Title: "F"},
		{Key: "b", Title: "B"},
		{Key: "d", Title: "D"},
		{Key: "p", Title: "P"},
	}
	dept := "Sales, EMEA"
	var nilPtr *string

	got := Marshal(columns, []Record{
		{"n": 42, "f": 87.5, "b": true, "d": decimal.RequireFromString("1200.50"), "p": &dept},
		{"p": nilPtr},
	})

	assert.Equal(t, "N,F,B,D,P\n42,87.5,true,1200.5,\"Sales, EMEA\"\n,,,,", string(got))
}
