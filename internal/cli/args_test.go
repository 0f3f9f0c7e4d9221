package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateArgs(t *testing.T) {
	startDate, deltaDays, err := ValidateArgs([]string{"2020-01-12", "7"})
	assert.NoError(t, err)
	assert.Equal(t, "2020-01-12", startDate)
	assert.Equal(t, 7, deltaDays)
}

func TestValidateArgs_WrongCount(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"2020-01-12"},
		{"2020-01-12", "7", "extra"},
	} {
		_, _, err := ValidateArgs(args)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestValidateArgs_BadDate(t *testing.T) {
	for _, date := range []string{"20200112", "2020/01/12", "2020-01", "2020-01-12-x-y"} {
		_, _, err := ValidateArgs([]string{date, "7"})
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestValidateArgs_DeltaOutOfRange(t *testing.T) {
	for _, delta := range []string{"-1", "8", "100", "seven", ""} {
		_, _, err := ValidateArgs([]string{"2020-01-12", delta})
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestValidateArgs_DeltaBounds(t *testing.T) {
	for _, delta := range []string{"0", "7"} {
		_, _, err := ValidateArgs([]string{"2020-01-12", delta})
		assert.NoError(t, err)
	}
}
