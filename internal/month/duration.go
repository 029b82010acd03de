package month

import (
	"fmt"
	"math"
)

// Split breaks nonnegative decimal hours into whole hours and rounded
// minutes. A rounded minute value of 60 carries into the hour.
func Split(decimalHours float64) (hours, minutes int) {
	whole := math.Floor(decimalHours)
	hours = int(whole)
	minutes = int(math.Round((decimalHours - whole) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return hours, minutes
}

// FormatDuration renders nonnegative decimal hours as "7h" or "7h 30m".
// Callers handle the sign themselves, see FormatSigned.
func FormatDuration(decimalHours float64, showMinutes bool) string {
	hours, minutes := Split(decimalHours)
	if showMinutes && minutes > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}

func FormatSigned(decimalHours float64, showMinutes bool) string {
	s := FormatDuration(math.Abs(decimalHours), showMinutes)
	switch {
	case s == "0h":
		return s
	case decimalHours > 0:
		return "+" + s
	case decimalHours < 0:
		return "-" + s
	}
	return s
}
