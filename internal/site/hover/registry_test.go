package hover

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/product"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("view-%d", n)
	}
}

func TestMountCreatesIndependentStates(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	reg := NewRegistry(WithIDGenerator(sequentialIDs()))

	idA, a := reg.Mount(now)
	idB, b := reg.Mount(now)
	require.NotEqual(t, idA, idB)
	require.Equal(t, 2, reg.Len())

	a.SetHovered(product.Redis)
	_, ok := b.Hovered()
	require.False(t, ok, "views must not share hover state")

	got, err := reg.Lookup(idA, now)
	require.NoError(t, err)
	require.Same(t, a, got)
}

func TestMountSkipsCollidingIDs(t *testing.T) {
	t.Parallel()

	ids := []string{"dup", "dup", "fresh"}
	reg := NewRegistry(WithIDGenerator(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}))

	first, _ := reg.Mount(time.Now())
	second, _ := reg.Mount(time.Now())
	require.Equal(t, "dup", first)
	require.Equal(t, "fresh", second)
}

func TestDefaultIDsAreULIDs(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	id, _ := reg.Mount(time.Now())
	require.Len(t, id, 26)
}

func TestUnmountDiscardsState(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	id, state := reg.Mount(time.Now())
	state.SetHovered(product.Vector)

	require.True(t, reg.Unmount(id))
	require.False(t, reg.Unmount(id))

	_, err := reg.Lookup(id, time.Now())
	require.ErrorIs(t, err, ErrViewNotFound)
	require.Zero(t, reg.Len())
}

func TestLookupRefreshesAndExpires(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	reg := NewRegistry(WithTTL(10 * time.Minute))
	id, _ := reg.Mount(start)

	_, err := reg.Lookup(id, start.Add(9*time.Minute))
	require.NoError(t, err)

	// Still alive: the previous lookup refreshed the idle clock.
	_, err = reg.Lookup(id, start.Add(18*time.Minute))
	require.NoError(t, err)

	_, err = reg.Lookup(id, start.Add(29*time.Minute))
	require.ErrorIs(t, err, ErrViewNotFound)
	require.Zero(t, reg.Len())
}

func TestSweepRemovesIdleViews(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	reg := NewRegistry(WithTTL(time.Minute), WithIDGenerator(sequentialIDs()))
	idle, _ := reg.Mount(start)
	active, _ := reg.Mount(start)

	_, err := reg.Lookup(active, start.Add(50*time.Second))
	require.NoError(t, err)

	removed := reg.Sweep(start.Add(90 * time.Second))
	require.Equal(t, 1, removed)

	_, err = reg.Lookup(idle, start.Add(90*time.Second))
	require.ErrorIs(t, err, ErrViewNotFound)
	_, err = reg.Lookup(active, start.Add(90*time.Second))
	require.NoError(t, err)
}

func TestRunStopsWithContext(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(WithTTL(time.Nanosecond))
	reg.Mount(time.Now().Add(-time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	reported := make(chan int, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		reg.Run(ctx, 5*time.Millisecond, func(removed int) {
			select {
			case reported <- removed:
			default:
			}
		})
	}()

	select {
	case n := <-reported:
		require.Equal(t, 1, n)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not report removal")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
