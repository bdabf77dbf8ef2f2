package timehelper

import (
	"fmt"
	"time"
)

func GetTodaysDateString() string {
	// Get the current date
	currentTime := time.Now()

	// Format the date to 'YYYY-MM-DD'
	return currentTime.Format("2006-01-02")
}

// NowString is the UTC timestamp format used for event creation times. The
// fixed width fraction keeps lexicographic order equal to time order.
func NowString(now time.Time) string {
	return now.UTC().Format("2006-01-02T15:04:05.000000000Z07:00")
}

// Countdown renders the time left until kickoff as "2d 3h", "3h 05m" or
// "12m". Kickoffs in the past, or dates that do not parse, give "".
func Countdown(now time.Time, kickoff string) string {
	t, err := time.Parse(time.RFC3339, kickoff)
	if err != nil {
		return ""
	}

	left := t.Sub(now)
	if left <= 0 {
		return ""
	}

	days := int(left / (24 * time.Hour))
	hours := int(left % (24 * time.Hour) / time.Hour)
	minutes := int(left % time.Hour / time.Minute)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %02dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
