package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekplan/pkg/utils"
)

func TestNormalizeClock(t *testing.T) {
	cases := map[string]string{
		"08:30":    "08:30",
		"8:30":     "08:30",
		"23:59":    "23:59",
		"07:00:00": "07:00",
	}
	for in, want := range cases {
		got, err := utils.NormalizeClock(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	for _, in := range []string{"", "late", "25:00", "12h30"} {
		_, err := utils.NormalizeClock(in)
		assert.ErrorIs(t, err, utils.ErrInvalidClockTime, "input %q", in)
	}
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Empty(t, utils.FormatDisplayDate(0))
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`, utils.FormatDisplayDate(1756100000))
}
