package playback

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"3:45", 225},
		{"0:07", 7},
		{"10:00", 600},
		{"225", 225},
		{"", 0},
		{"  ", 0},
		{"abc", 0},
		{"3:75", 0},
		{"-1:30", 0},
		{"1:2:3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseClock(tt.input); got != tt.want {
				t.Errorf("parseClock(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
