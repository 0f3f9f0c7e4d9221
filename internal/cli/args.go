// Package cli validates the positional command line arguments before any
// network call is made.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrValidation indicates bad command line input.
var ErrValidation = errors.New("invalid arguments")

const banner = `    _   __________               ______________  ___________
   / | / / ____/ /      __/|_   / ___/_  __/   |/_  __/ ___/
  /  |/ / /_  / /      |    /   \__ \ / / / /| | / /  \__ \
 / /|  / __/ / /___   /_ __|   ___/ // / / ___ |/ /  ___/ /
/_/ |_/_/   /_____/    |/     /____//_/ /_/  |_/_/  /____/ `

// ValidateArgs checks the two positional arguments: a start date and a delta
// in days. The start date must have three hyphen-separated parts and the
// delta must be an integer between 0 and 7 inclusive.
func ValidateArgs(args []string) (string, int, error) {
	if len(args) != 2 {
		return "", 0, fmt.Errorf("%w: expected a starting date and a delta in days, "+
			"example: nfl-event-parser 2020-01-12 7", ErrValidation)
	}

	startDate := args[0]
	if len(strings.Split(startDate, "-")) != 3 {
		return "", 0, fmt.Errorf("%w: please pass a starting date (including a year, "+
			"month, and date) in the following format: YYYY-MM-DD", ErrValidation)
	}

	deltaDays, err := strconv.Atoi(args[1])
	if err != nil || deltaDays < 0 || deltaDays > 7 {
		return "", 0, fmt.Errorf("%w: the delta provided must be between 0 and 7 days inclusive", ErrValidation)
	}

	return startDate, deltaDays, nil
}

// Banner returns the ASCII art printed once arguments pass validation.
func Banner() string {
	return banner
}
