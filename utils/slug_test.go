package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"Été à la montagne", "ete-a-la-montagne"},
		{"C'est déjà Noël !", "c-est-deja-noel"},
		{"  spaces   everywhere  ", "spaces-everywhere"},
		{"UPPER-case", "upper-case"},
		{"100% Go", "100-go"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.expected {
			t.Errorf("Slugify(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}
