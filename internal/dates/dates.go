package dates

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"

	outputDateLayout = "02-01-2006"
	outputTimeLayout = "15:04"
)

// ErrFormat indicates a date or datetime string did not match the expected layout.
var ErrFormat = errors.New("date format mismatch")

// ComputeEndDate adds deltaDays calendar days to startDate and renders the
// result in the same YYYY-MM-DD layout.
func ComputeEndDate(startDate string, deltaDays int) (string, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return "", fmt.Errorf("%w: parsing start date %q: %v", ErrFormat, startDate, err)
	}
	return start.AddDate(0, 0, deltaDays).Format(DateLayout), nil
}

// SplitDateTime splits a combined "YYYY-MM-DD HH:MM" string into a day-first
// date ("DD-MM-YYYY") and a time ("HH:MM"). The day-first output order is part
// of the output file contract, not a formatting accident.
func SplitDateTime(combined string) (string, string, error) {
	full, err := time.Parse(DateTimeLayout, combined)
	if err != nil {
		return "", "", fmt.Errorf("%w: parsing datetime %q: %v", ErrFormat, combined, err)
	}
	return full.Format(outputDateLayout), full.Format(outputTimeLayout), nil
}
