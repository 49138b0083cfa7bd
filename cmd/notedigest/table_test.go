package main

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		rows    [][]string
		want    []string
	}{
		{
			name:    "no columns",
			headers: nil,
			rows:    [][]string{{"x"}},
			want:    nil,
		},
		{
			name:    "short rows padded",
			headers: []string{"#", "Key point"},
			rows:    [][]string{{"1", "Buy milk"}, {"2"}},
			want:    []string{"KEY POINT", "Buy milk", "╭", "╰"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderTable(tt.headers, tt.rows, []columnAlignment{alignRight, alignLeft})
			if tt.want == nil && got != "" {
				t.Errorf("renderTable() = %q, want empty", got)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("renderTable() missing %q in:\n%s", w, got)
				}
			}
		})
	}
}
