package hover

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/product"
)

func TestStateStartsEmpty(t *testing.T) {
	t.Parallel()

	s := NewState()
	id, ok := s.Hovered()
	require.False(t, ok)
	require.Equal(t, product.None, id)
}

func TestSetHoveredReplacesPreviousValue(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.SetHovered(product.Redis)
	s.SetHovered(product.Vector)

	id, ok := s.Hovered()
	require.True(t, ok)
	require.Equal(t, product.Vector, id)

	s.Clear()
	_, ok = s.Hovered()
	require.False(t, ok)
}

func TestSetHoveredAcceptsUnknownIdentifiers(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.SetHovered("search")

	id, ok := s.Hovered()
	require.True(t, ok)
	require.Equal(t, product.ID("search"), id)
}

func TestSubscribersSeeChangesOnly(t *testing.T) {
	t.Parallel()

	s := NewState()
	type change struct {
		id product.ID
		ok bool
	}
	var got []change
	cancel := s.Subscribe(func(id product.ID, ok bool) {
		got = append(got, change{id, ok})
	})

	s.SetHovered(product.QStash)
	s.SetHovered(product.QStash)
	s.Clear()
	cancel()
	s.SetHovered(product.Redis)

	require.Equal(t, []change{{product.QStash, true}, {product.None, false}}, got)
}

func TestListenerMayReadState(t *testing.T) {
	t.Parallel()

	s := NewState()
	var seen product.ID
	s.Subscribe(func(product.ID, bool) {
		seen, _ = s.Hovered()
	})
	s.SetHovered(product.Vector)
	require.Equal(t, product.Vector, seen)
}

func TestConcurrentWritersLeaveOneValue(t *testing.T) {
	t.Parallel()

	s := NewState()
	ids := []product.ID{product.Redis, product.Vector, product.QStash, product.None}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.SetHovered(ids[i%len(ids)])
			_, _ = s.Hovered()
		}(i)
	}
	wg.Wait()

	id, _ := s.Hovered()
	require.Contains(t, ids, id)
}
