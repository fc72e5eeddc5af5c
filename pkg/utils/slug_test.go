package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Terms & Conditions", "terms-conditions"},
		{"  Oak Framed Garages  ", "oak-framed-garages"},
		{"FAQ", "faq"},
		{"---", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
