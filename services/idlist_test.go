package services

import (
	"reflect"
	"testing"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"single quoted literal", "['P001', 'P002']", []string{"P001", "P002"}},
		{"no spaces", "['P001','P002','P003']", []string{"P001", "P002", "P003"}},
		{"json array", `["P001", "P002"]`, []string{"P001", "P002"}},
		{"single element", "['P123']", []string{"P123"}},
		{"empty list", "[]", []string{}},
		{"empty string", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"missing brackets", "P001, P002", []string{}},
		{"missing closing bracket", "['P001', 'P002'", []string{}},
		{"missing opening bracket", "'P001', 'P002']", []string{}},
		{"unquoted elements", "[P001, P002]", []string{"P001", "P002"}},
		{"surrounding whitespace", "  ['P001']  ", []string{"P001"}},
		{"empty elements dropped", "['P001', '', 'P002']", []string{"P001", "P002"}},
		{"json with blank entry", `["P001", "  ", "P002"]`, []string{"P001", "P002"}},
		{"unpaired quote treated as bad data", "['P001, 'P002']", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIDList(tt.raw)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseIDList(%q): got %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestParseIDList_NeverNil(t *testing.T) {
	inputs := []string{"", "garbage", "[", "]", "[''former'']"}
	for _, in := range inputs {
		if got := ParseIDList(in); got == nil {
			t.Errorf("ParseIDList(%q) returned nil, want empty slice", in)
		}
	}
}
