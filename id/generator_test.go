package id

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerator_Monotonic(t *testing.T) {
	g := NewGenerator()

	var prev ID
	for i := 0; i < 10_000; i++ {
		next, err := g.Generate()
		require.NoError(t, err)
		if i > 0 {
			require.True(t, prev.Less(next), "iteration %d: %s should sort before %s", i, prev, next)
		}
		prev = next
	}
}

func TestGenerator_MonotonicUnderFrozenClock(t *testing.T) {
	frozen := time.UnixMilli(1_700_000_000_000)
	g := &Generator{now: func() time.Time { return frozen }}

	var prev ID
	for i := 0; i < 1_000; i++ {
		next, err := g.Generate()
		require.NoError(t, err)
		if i > 0 {
			require.True(t, prev.Less(next))
		}
		prev = next
	}
}

func TestGenerator_MonotonicUnderRegressingClock(t *testing.T) {
	ms := []int64{1_700_000_000_000, 1_700_000_000_000, 1_699_999_999_000, 1_700_000_000_001}
	call := 0
	g := &Generator{now: func() time.Time {
		t := time.UnixMilli(ms[call])
		if call < len(ms)-1 {
			call++
		}
		return t
	}}

	var prev ID
	for i := 0; i < len(ms); i++ {
		next, err := g.Generate()
		require.NoError(t, err)
		if i > 0 {
			require.True(t, prev.Less(next), "regression at step %d should still be monotonic", i)
		}
		prev = next
	}
}

func TestGenerator_ConcurrentUnique(t *testing.T) {
	g := NewGenerator()
	const goroutines = 32
	const perGoroutine = 200

	ids := make(chan ID, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				next, err := g.Generate()
				require.NoError(t, err)
				ids <- next
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[ID]struct{}, goroutines*perGoroutine)
	for next := range ids {
		_, dup := seen[next]
		require.False(t, dup, "duplicate ID generated: %s", next)
		seen[next] = struct{}{}
	}
}

func TestGenerator_PoisonedAfterPanic(t *testing.T) {
	g := &Generator{now: func() time.Time {
		panic("boom")
	}}

	_, err := g.Generate()
	require.ErrorIs(t, err, ErrGeneratorPoisoned)

	_, err = g.Generate()
	require.ErrorIs(t, err, ErrGeneratorPoisoned)
}

func TestID_ParseRoundTrip(t *testing.T) {
	g := NewGenerator()
	next, err := g.Generate()
	require.NoError(t, err)

	parsed, err := Parse(next.String())
	require.NoError(t, err)
	require.Equal(t, next, parsed)
}

func TestID_ParseInvalid(t *testing.T) {
	_, err := Parse("not-a-valid-id")
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestID_IsZero(t *testing.T) {
	require.True(t, ID{}.IsZero())

	g := NewGenerator()
	next, err := g.Generate()
	require.NoError(t, err)
	require.False(t, next.IsZero())
}
