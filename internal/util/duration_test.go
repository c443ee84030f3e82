package util

import (
	"strings"
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "30", want: 30 * time.Minute},
		{input: "0", want: 0},
		{input: " 15 ", want: 15 * time.Minute},
		{input: "90s", want: 90 * time.Second},
		{input: "2h30m", want: 2*time.Hour + 30*time.Minute},
		{input: "1h30m45s", want: time.Hour + 30*time.Minute + 45*time.Second},
		{input: "500ms", want: 500 * time.Millisecond},
		{input: "", wantErr: true},
		{input: "soon", wantErr: true},
		{input: "2x30m", wantErr: true},
		{input: "1.5", wantErr: true},
		{input: "-5", wantErr: true},
		{input: "-1h", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDuration(%q) = %v, want error", tt.input, got)
				}
				if !strings.Contains(err.Error(), "Valid formats") {
					t.Errorf("error should list the valid formats, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDuration(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{999 * time.Millisecond, "00:00:00"},
		{time.Second, "00:00:01"},
		{59*time.Minute + 59*time.Second, "00:59:59"},
		{time.Hour, "01:00:00"},
		{25*time.Hour + 3*time.Minute + 7*time.Second, "25:03:07"},
		{-time.Second, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatClock(tt.in); got != tt.want {
				t.Errorf("FormatClock(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
