package sanitizer

import "testing"

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Jane Doe", "Jane Doe"},
		{"leading and trailing spaces", "  Jane Doe  ", "Jane Doe"},
		{"internal whitespace collapsed", "Jane \t  Doe", "Jane Doe"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.input); got != tt.expected {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercased", "Jane@X.Com", "jane@x.com"},
		{"trimmed", "  jane@x.com ", "jane@x.com"},
		{"already clean", "jane@x.com", "jane@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeEmail(tt.input); got != tt.expected {
				t.Errorf("SanitizeEmail(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"e164 passthrough", "+12125551234", "+12125551234"},
		{"international with spaces", "+1 212 555 1234", "+12125551234"},
		{"local number kept as typed", "555-1234", "555-1234"},
		{"trimmed", "  555-1234  ", "555-1234"},
		{"unparseable plus kept", "+", "+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizePhone(tt.input); got != tt.expected {
				t.Errorf("SanitizePhone(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
