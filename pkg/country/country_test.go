package country

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"known code", "US", "United States"},
		{"lowercase normalized", "jp", "Japan"},
		{"padded", "  gb  ", "United Kingdom"},
		{"unknown passes through", "ZZ", "ZZ"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.input); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
