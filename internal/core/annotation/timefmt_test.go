package annotation

import "testing"

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{9.7, "00:09"},
		{65, "01:05"},
		{600, "10:00"},
		{3599.9, "59:59"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %s, want %s", tt.seconds, got, tt.want)
		}
	}
}
