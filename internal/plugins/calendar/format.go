package calendar

import (
	"fmt"
	"strings"
	"time"
)

// FormatDateDDMMYYYY turns "YYYY-MM-DD", optionally followed by a time
// after a space or "T", into "DD.MM.YYYY".
func FormatDateDDMMYYYY(s string) (string, error) {
	datePart := strings.TrimSpace(s)
	if i := strings.IndexAny(datePart, " T"); i >= 0 {
		datePart = datePart[:i]
	}
	d, err := time.Parse(time.DateOnly, datePart)
	if err != nil {
		return "", fmt.Errorf("formatting date %q: %w", s, err)
	}
	return d.Format("02.01.2006"), nil
}
