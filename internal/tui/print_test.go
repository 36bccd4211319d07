package tui

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single", "a", []string{"a"}},
		{"three", "a\nb\nc", []string{"a", "b", "c"}},
		{"trailing newline", "a\n", []string{"a"}},
		{"only newline", "\n", []string{""}},
		{"blank middle", "a\n\nb", []string{"a", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"two trailing", "a\n\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
