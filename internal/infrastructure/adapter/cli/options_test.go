package cli

import (
	"io"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	t.Run("Flags", func(t *testing.T) {
		opts, err := ParseOptions([]string{"--from", "2013-06-17", "-t", "2014-01-01", "--tz", "Europe/Berlin", "--json", "-a"}, io.Discard)
		require.NoError(t, err)

		assert.Equal(t, "2013-06-17", opts.From)
		assert.Equal(t, "2014-01-01", opts.To)
		assert.Equal(t, "Europe/Berlin", opts.Timezone)
		assert.True(t, opts.JSON)
		assert.True(t, opts.ShowZero)
		assert.False(t, opts.HasPeriod)
		assert.Equal(t, "", opts.PeriodString())
	})

	t.Run("Positional arguments", func(t *testing.T) {
		opts, err := ParseOptions([]string{"2013-06-17", "2014-01-01"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "2013-06-17", opts.From)
		assert.Equal(t, "2014-01-01", opts.To)
	})

	t.Run("Period flag", func(t *testing.T) {
		opts, err := ParseOptions([]string{"--from", "2013-01-31", "--period", "P1Y2M"}, io.Discard)
		require.NoError(t, err)
		assert.True(t, opts.HasPeriod)
		assert.Equal(t, "P1Y2M", opts.PeriodString())
	})

	t.Run("Invalid period", func(t *testing.T) {
		_, err := ParseOptions([]string{"--period", "one year"}, io.Discard)
		assert.Error(t, err)
	})

	t.Run("Too many arguments", func(t *testing.T) {
		_, err := ParseOptions([]string{"a", "b", "c"}, io.Discard)
		assert.Error(t, err)
	})

	t.Run("Duplicate from", func(t *testing.T) {
		_, err := ParseOptions([]string{"--from", "2013-01-01", "2014-01-01"}, io.Discard)
		assert.Error(t, err)
	})

	t.Run("Help", func(t *testing.T) {
		_, err := ParseOptions([]string{"--help"}, io.Discard)
		assert.ErrorIs(t, err, pflag.ErrHelp)
		assert.Equal(t, ExitOK, ExitCodeForParseError(err))
		assert.Equal(t, ExitUsage, ExitCodeForParseError(assert.AnError))
	})
}
