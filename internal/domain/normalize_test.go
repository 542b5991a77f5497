package domain

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "INVOICE", "invoice"},
		{"strips spaces", "tax returns 2024", "taxreturns2024"},
		{"strips tabs and newlines", "a\tb\nc", "abc"},
		{"strips full-width spaces", "請求書　控え", "請求書控え"},
		{"mixed case and spacing", " 2024 Invoices ", "2024invoices"},
		{"empty", "", ""},
		{"only whitespace", " \t\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
