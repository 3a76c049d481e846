package common

import (
	"math"
	"testing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{
			name:     "typical run",
			input:    "25:30",
			expected: 25.5,
		},
		{
			name:     "zero",
			input:    "0:00",
			expected: 0,
		},
		{
			name:     "whole minutes",
			input:    "5:00",
			expected: 5,
		},
		{
			name:     "three quarter minute",
			input:    "10:45",
			expected: 10.75,
		},
		{
			name:     "padded input",
			input:    " 7 : 30 ",
			expected: 7.5,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "no separator",
			input:   "25",
			wantErr: true,
		},
		{
			name:    "too many parts",
			input:   "1:25:30",
			wantErr: true,
		},
		{
			name:    "non numeric",
			input:   "abc:def",
			wantErr: true,
		},
		{
			name:    "missing seconds",
			input:   "12:",
			wantErr: true,
		},
		{
			name:    "missing minutes",
			input:   ":30",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDuration(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDuration(%q) expected error, got %v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDuration(%q) unexpected error: %v", tc.input, err)
			}
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Fatalf("ParseDuration(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "half minute",
			input:    25.5,
			expected: "25:30",
		},
		{
			name:     "whole minutes",
			input:    5,
			expected: "5:00",
		},
		{
			name:     "rounds up to next minute",
			input:    7.9999,
			expected: "8:00",
		},
		{
			name:     "zero",
			input:    0,
			expected: "0:00",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatMinutes(tc.input); got != tc.expected {
				t.Fatalf("FormatMinutes(%v) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFormatDistance(t *testing.T) {
	if got := FormatDistance(5000); got != "5000" {
		t.Fatalf("FormatDistance(5000) = %q, want %q", got, "5000")
	}
	if got := FormatDistance(1609.34); got != "1609.34" {
		t.Fatalf("FormatDistance(1609.34) = %q, want %q", got, "1609.34")
	}
}
