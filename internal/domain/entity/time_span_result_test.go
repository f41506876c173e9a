package entity

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/timespan/internal/domain/error"
)

// magnitudes in hierarchy order: mil, cent, dec, yrs, mon, wk, day, h, m, s, ms, us, ns
func sampleMagnitudes() []int64 {
	return []int64{0, 0, 0, 1, 2, 0, 3, 4, 5, 6, 500, 0, 0}
}

func TestNewTimeSpanResult(t *testing.T) {
	t.Run("Forward amounts are positive", func(t *testing.T) {
		r := NewTimeSpanResult(1, sampleMagnitudes(), big.NewInt(42), []int{2004, 2000, 2004})

		assert.Equal(t, 1, r.Sign())
		assert.Equal(t, int64(1), r.Years())
		assert.Equal(t, int64(2), r.Months())
		assert.Equal(t, int64(3), r.Days())
		assert.Equal(t, int64(500), r.Millis())
		assert.Equal(t, []int{2000, 2004}, r.LeapYears())
		assert.Equal(t, 2, r.LeapCount())
		assert.Equal(t, int64(42), r.TotalNanoseconds().Int64())
		assert.False(t, r.IsZero())
	})

	t.Run("Backward amounts carry the sign", func(t *testing.T) {
		r := NewTimeSpanResult(-1, sampleMagnitudes(), big.NewInt(-42), []int{2000})

		assert.Equal(t, -1, r.Sign())
		assert.Equal(t, int64(-1), r.Years())
		assert.Equal(t, int64(-4), r.Hours())
		assert.Equal(t, int64(0), r.Weeks())
		assert.Equal(t, int64(42), r.TotalNanoseconds().Int64(), "total is absolute")
		assert.Equal(t, 1, r.LeapCount(), "leap count is never negative")
	})

	t.Run("Zero sign is forward", func(t *testing.T) {
		r := NewTimeSpanResult(0, nil, nil, nil)
		assert.Equal(t, 1, r.Sign())
		assert.True(t, r.IsZero())
		assert.NotNil(t, r.LeapYears())
		assert.Empty(t, r.LeapYears())
		for _, e := range r.Entries() {
			assert.Zero(t, e.Amount, e.Unit)
		}
	})

	t.Run("Returned slices are copies", func(t *testing.T) {
		leaps := []int{2000}
		r := NewTimeSpanResult(1, nil, big.NewInt(1), leaps)
		leaps[0] = 1900
		got := r.LeapYears()
		got[0] = 1800
		assert.Equal(t, []int{2000}, r.LeapYears())

		total := r.TotalNanoseconds()
		total.SetInt64(99)
		assert.Equal(t, int64(1), r.TotalNanoseconds().Int64())
	})
}

func TestTimeSpanResult_EntriesAndMap(t *testing.T) {
	r := NewTimeSpanResult(1, sampleMagnitudes(), big.NewInt(1), nil)

	entries := r.Entries()
	require.Len(t, entries, UnitCount)
	assert.Equal(t, UnitAmount{Unit: Millenniums, Amount: 0}, entries[0])
	assert.Equal(t, UnitAmount{Unit: Years, Amount: 1}, entries[3])
	assert.Equal(t, UnitAmount{Unit: Nanos, Amount: 0}, entries[12])

	m := r.Map()
	assert.Len(t, m, UnitCount)
	assert.Equal(t, int64(6), m[Seconds])
	assert.Equal(t, int64(0), r.Amount("fortnights"))
}

func TestTimeSpanResult_TotalDuration(t *testing.T) {
	t.Run("Fits", func(t *testing.T) {
		r := NewTimeSpanResult(-1, nil, big.NewInt(int64(90*time.Minute)), nil)
		d, err := r.TotalDuration()
		require.NoError(t, err)
		assert.Equal(t, -90*time.Minute, d)
	})

	t.Run("Overflows", func(t *testing.T) {
		huge := new(big.Int).Lsh(big.NewInt(1), 70)
		r := NewTimeSpanResult(1, nil, huge, nil)
		_, err := r.TotalDuration()
		require.Error(t, err)
		assert.True(t, errs.IsOverflowError(err))
	})
}

func TestTimeSpanResult_ISO8601(t *testing.T) {
	testCases := []struct {
		name       string
		sign       int
		magnitudes []int64
		expected   string
	}{
		{
			name:       "Mixed fields with a fraction of a second",
			sign:       1,
			magnitudes: sampleMagnitudes(),
			expected:   "P1Y2M3DT4H5M6.5S",
		},
		{
			name:       "Negative",
			sign:       -1,
			magnitudes: sampleMagnitudes(),
			expected:   "-P1Y2M3DT4H5M6.5S",
		},
		{
			name:       "Larger units fold into years",
			sign:       1,
			magnitudes: []int64{2, 3, 4, 5, 0, 1, 0, 0, 0, 0, 0, 0, 0},
			expected:   "P2345Y1W",
		},
		{
			name:       "Nanosecond precision",
			sign:       1,
			magnitudes: []int64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
			expected:   "PT0.000000001S",
		},
		{
			name:     "Zero",
			sign:     1,
			expected: "P0D",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewTimeSpanResult(tc.sign, tc.magnitudes, big.NewInt(1), nil)
			assert.Equal(t, tc.expected, r.ISO8601())
		})
	}
}
