package cli

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/timespan/internal/domain/entity"
)

func TestRenderer_Render(t *testing.T) {
	res := entity.NewTimeSpanResult(
		-1,
		[]int64{0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 0, 0},
		big.NewInt(31_629_600_000_000_000),
		[]int{2012},
	)

	t.Run("Non-zero units only", func(t *testing.T) {
		out := NewRenderer(&bytes.Buffer{}, false).Render("2013-01-01", "2012-01-01", res)

		assert.Contains(t, out, "2013-01-01 → 2012-01-01")
		assert.Contains(t, out, "years")
		assert.Contains(t, out, "hours")
		assert.Contains(t, out, "-1")
		assert.Contains(t, out, "-2")
		assert.NotContains(t, out, "millenniums")
		assert.Contains(t, out, "-P1YT2H")
		assert.Contains(t, out, "31629600000000000")
		assert.Contains(t, out, "Leap years (1)")
		assert.Contains(t, out, "2012")
	})

	t.Run("All units", func(t *testing.T) {
		out := NewRenderer(&bytes.Buffer{}, true).Render("a", "b", res)
		for _, name := range entity.UnitNames() {
			assert.Contains(t, out, string(name))
		}
	})

	t.Run("Zero span", func(t *testing.T) {
		out := NewRenderer(&bytes.Buffer{}, false).Render("a", "a", entity.NewTimeSpanResult(1, nil, nil, nil))
		assert.Contains(t, out, "no time elapsed")
		assert.Contains(t, out, "P0D")
		assert.Contains(t, out, "none")
	})
}

func TestFormatLeapYears(t *testing.T) {
	assert.Equal(t, "none", formatLeapYears(nil))
	assert.Equal(t, "2000, 2004", formatLeapYears([]int{2000, 2004}))

	var many []int
	for y := 2000; y < 2100; y += 4 {
		many = append(many, y)
	}
	assert.Equal(t, "2000, 2004, 2008, 2012, 2016, 2020, …, 2076, 2080, 2084, 2088, 2092, 2096", formatLeapYears(many))
}
