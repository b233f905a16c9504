package timer

import "fmt"

// FormatRemaining renders seconds as MM:SS. Minutes are not wrapped into
// hours, so 3600 renders as "60:00". Negative input renders as "00:00".
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func clamp(v int) int {
	if v < MinLength {
		return MinLength
	}
	if v > MaxLength {
		return MaxLength
	}
	return v
}
