package playback

import (
	"strconv"
	"strings"
)

// parseClock converts a "m:ss" duration string (or plain seconds) to
// seconds. Unknown or malformed durations parse to 0; the session then
// clamps seek targets to 0 until real metadata is available.
func parseClock(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		secs, err := strconv.ParseFloat(parts[0], 64)
		if err != nil || secs < 0 {
			return 0
		}
		return secs
	case 2:
		mins, err := strconv.Atoi(parts[0])
		if err != nil || mins < 0 {
			return 0
		}
		secs, err := strconv.Atoi(parts[1])
		if err != nil || secs < 0 || secs > 59 {
			return 0
		}
		return float64(mins*60 + secs)
	default:
		return 0
	}
}
