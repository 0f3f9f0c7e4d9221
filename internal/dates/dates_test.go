package dates

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeEndDate(t *testing.T) {
	cases := []struct {
		startDate string
		deltaDays int
		expected  string
	}{
		{"2020-01-12", 0, "2020-01-12"},
		{"2020-01-12", 1, "2020-01-13"},
		{"2020-01-12", 7, "2020-01-19"},
		{"2020-01-31", 1, "2020-02-01"},
		{"2020-02-28", 2, "2020-03-01"}, // leap year
		{"2019-12-31", 3, "2020-01-03"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s+%d", tc.startDate, tc.deltaDays), func(t *testing.T) {
			end, err := ComputeEndDate(tc.startDate, tc.deltaDays)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, end)
		})
	}
}

func TestComputeEndDate_BadFormat(t *testing.T) {
	for _, startDate := range []string{"12-01-2020", "2020/01/12", "not a date", ""} {
		_, err := ComputeEndDate(startDate, 1)
		assert.ErrorIs(t, err, ErrFormat)
	}
}

func TestSplitDateTime(t *testing.T) {
	date, clock, err := SplitDateTime("2020-01-12 18:30")
	assert.NoError(t, err)
	assert.Equal(t, "12-01-2020", date)
	assert.Equal(t, "18:30", clock)
}

func TestSplitDateTime_BadFormat(t *testing.T) {
	for _, combined := range []string{"2020-01-12", "18:30", "2020-01-12T18:30", ""} {
		_, _, err := SplitDateTime(combined)
		assert.ErrorIs(t, err, ErrFormat)
	}
}
