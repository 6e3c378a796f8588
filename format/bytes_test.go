package format

import (
	"testing"
)

func TestHumanBytes(t *testing.T) {
	type testCase struct {
		input    int64
		expected string
	}

	tests := []testCase{
		{0, "0 B"},
		{1, "1 B"},
		{999, "999 B"},

		{1000, "1.0 KB"},
		{1500, "1.5 KB"},
		{999999, "1000.0 KB"},

		{1000000, "1.0 MB"},
		{1250000, "1.2 MB"},

		{1000000000, "1.0 GB"},
		{1500000000, "1.5 GB"},

		{1000000000000, "1.0 TB"},
		{2500000000000, "2.5 TB"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			result := HumanBytes(tc.input)
			if result != tc.expected {
				t.Errorf("HumanBytes(%d) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestHumanCount(t *testing.T) {
	type testCase struct {
		input    float64
		expected string
	}

	tests := []testCase{
		{0, "0.00"},
		{3.5, "3.50"},
		{34.217, "34.2"},
		{120, "120"},
		{999.4, "999"},

		{1000, "1.00K"},
		{34500, "34.5K"},
		{999000, "999K"},

		{1000000, "1.00M"},
		{2340000, "2.34M"},

		{1000000000, "1.00B"},
		{1000000000000, "1.00T"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			result := HumanCount(tc.input)
			if result != tc.expected {
				t.Errorf("HumanCount(%f) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}
