package time

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealTimeProvider_Now(t *testing.T) {
	p := NewRealTimeProvider()

	before := time.Now()
	now := p.Now()
	assert.False(t, now.Before(before))
	assert.GreaterOrEqual(t, p.Since(before), time.Duration(0))
}

func TestRealTimeProvider_LoadLocation(t *testing.T) {
	p := NewRealTimeProvider()

	t.Run("Empty and UTC", func(t *testing.T) {
		for _, name := range []string{"", " ", "UTC", "utc"} {
			loc, err := p.LoadLocation(name)
			require.NoError(t, err)
			assert.Equal(t, time.UTC, loc)
		}
	})

	t.Run("IANA name is cached", func(t *testing.T) {
		first, err := p.LoadLocation("Europe/Berlin")
		require.NoError(t, err)
		second, err := p.LoadLocation("Europe/Berlin")
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, "Europe/Berlin", first.String())
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, err := p.LoadLocation("Mars/Olympus")
		assert.Error(t, err)
	})

	t.Run("Concurrent lookups", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := p.LoadLocation("Asia/Tokyo")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
	})
}
