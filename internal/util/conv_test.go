package util

import "testing"

func TestParseIntDefault(t *testing.T) {
	tests := []struct {
		name string
		in   string
		def  int
		want int
	}{
		{"empty string", "", 7, 7},
		{"valid number", "42", 7, 42},
		{"negative number", "-3", 7, -3},
		{"garbage", "abc", 7, 7},
		{"float", "1.5", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseIntDefault(tt.in, tt.def); got != tt.want {
				t.Errorf("ParseIntDefault(%q, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
			}
		})
	}
}

func TestMustParseUint(t *testing.T) {
	tests := []struct {
		in   string
		want uint
	}{
		{"123", 123},
		{"0", 0},
		{"", 0},
		{"-1", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		if got := MustParseUint(tt.in); got != tt.want {
			t.Errorf("MustParseUint(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIsVideo(t *testing.T) {
	tests := []struct {
		mime string
		want bool
	}{
		{"video/mp4", true},
		{"video/webm", true},
		{"application/x-mpegURL", true},
		{"image/png", false},
		{"text/plain", false},
	}

	for _, tt := range tests {
		if got := IsVideo(tt.mime); got != tt.want {
			t.Errorf("IsVideo(%q) = %v, want %v", tt.mime, got, tt.want)
		}
	}
}
