package media

import "fmt"

// FormatDuration renders seconds as minutes:seconds, e.g. 90 -> "1:30".
// Zero or negative values render as "0:00".
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "0:00"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
