package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/pokedex-data/internal/catalog"
	"github.com/albapepper/pokedex-data/internal/provider"
)

func details(from, to int) []provider.EntityDetail {
	out := []provider.EntityDetail{}
	for id := from; id <= to; id++ {
		out = append(out, provider.EntityDetail{ID: id})
	}
	return out
}

func itemIDs(items []provider.EntityDetail) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func loaded(t *testing.T, s State, offset int, page catalog.Page) State {
	t.Helper()
	tk := Ticket{Seq: s.Seq + 1, Offset: offset}
	s = Transition(s, Started{Ticket: tk})
	require.True(t, s.Loading())
	return Transition(s, Succeeded{Ticket: tk, Page: page})
}

func TestNewState(t *testing.T) {
	s := NewState(catalog.Query{Limit: 20, Offset: 40})
	assert.Equal(t, 0, s.Query.Offset)
	assert.Empty(t, s.Items)
	assert.NotNil(t, s.Items)
	assert.True(t, s.HasMore)
	assert.Equal(t, Idle, s.Status)
	assert.Equal(t, -1, s.LoadedOffset)
	assert.Equal(t, 0, s.NextOffset())
	assert.True(t, s.CanLoadMore())
}

func TestTransitionReplaceThenAppend(t *testing.T) {
	s := NewState(catalog.Query{Limit: 3})
	s = loaded(t, s, 0, catalog.Page{Items: details(1, 3), HasMore: true})
	assert.Equal(t, []int{1, 2, 3}, itemIDs(s.Items))
	assert.Equal(t, Loaded, s.Status)
	assert.Equal(t, 3, s.NextOffset())

	s = loaded(t, s, 3, catalog.Page{Items: details(3, 6), HasMore: false})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, itemIDs(s.Items), "duplicate id 3 skipped")
	assert.False(t, s.HasMore)
	assert.False(t, s.CanLoadMore())

	s = loaded(t, s, 0, catalog.Page{Items: details(7, 8), HasMore: true})
	assert.Equal(t, []int{7, 8}, itemIDs(s.Items), "offset 0 replaces")
	assert.True(t, s.HasMore)
}

func TestTransitionHasMoreStaysFalseOnAppend(t *testing.T) {
	s := NewState(catalog.Query{Limit: 2})
	s = loaded(t, s, 0, catalog.Page{Items: details(1, 2), HasMore: false})
	s = loaded(t, s, 2, catalog.Page{Items: details(3, 4), HasMore: true})
	assert.False(t, s.HasMore)
}

func TestTransitionDropsStaleCompletions(t *testing.T) {
	s := NewState(catalog.Query{Limit: 2})
	first := Ticket{Seq: 1, Offset: 0}
	second := Ticket{Seq: 2, Offset: 0}
	s = Transition(s, Started{Ticket: first})
	s = Transition(s, Started{Ticket: second})

	s = Transition(s, Succeeded{Ticket: second, Page: catalog.Page{Items: details(5, 6), HasMore: true}})
	s = Transition(s, Succeeded{Ticket: first, Page: catalog.Page{Items: details(1, 2), HasMore: true}})
	assert.Equal(t, []int{5, 6}, itemIDs(s.Items))

	s2 := Transition(s, Failed{Ticket: first, Err: "late"})
	assert.Equal(t, s, s2)
}

func TestTransitionResetDropsInFlight(t *testing.T) {
	s := NewState(catalog.Query{Limit: 2})
	s = loaded(t, s, 0, catalog.Page{Items: details(1, 2), HasMore: true})
	tk := Ticket{Seq: s.Seq + 1, Offset: 2}
	s = Transition(s, Started{Ticket: tk})

	s = Transition(s, Reset{Query: catalog.Query{Category: "fire", Limit: 2}})
	assert.Empty(t, s.Items)
	assert.Equal(t, Idle, s.Status)
	assert.Equal(t, uint64(2), s.Seq, "sequence survives a reset")

	s = Transition(s, Succeeded{Ticket: tk, Page: catalog.Page{Items: details(3, 4)}})
	assert.Empty(t, s.Items)
}

func TestTransitionFailure(t *testing.T) {
	tests := []struct {
		name         string
		prime        bool
		offset       int
		wantItems    []int
		wantHasMore  bool
		wantOffset   int
		wantNextLoad int
	}{
		{name: "first page", prime: false, offset: 0, wantItems: []int{}, wantHasMore: false, wantOffset: 0, wantNextLoad: 0},
		{name: "reload", prime: true, offset: 0, wantItems: []int{}, wantHasMore: false, wantOffset: 0, wantNextLoad: 0},
		{name: "append", prime: true, offset: 2, wantItems: []int{1, 2}, wantHasMore: true, wantOffset: 0, wantNextLoad: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(catalog.Query{Limit: 2})
			if tt.prime {
				s = loaded(t, s, 0, catalog.Page{Items: details(1, 2), HasMore: true})
			}
			tk := Ticket{Seq: s.Seq + 1, Offset: tt.offset}
			s = Transition(s, Started{Ticket: tk})
			s = Transition(s, Failed{Ticket: tk, Err: "catalog unavailable"})

			assert.Equal(t, Errored, s.Status)
			assert.Equal(t, "catalog unavailable", s.Error)
			assert.Equal(t, tt.wantItems, itemIDs(s.Items))
			assert.Equal(t, tt.wantHasMore, s.HasMore)
			assert.Equal(t, tt.wantOffset, s.Offset)
			assert.Equal(t, tt.wantNextLoad, s.NextOffset())
			assert.Nil(t, s.Awaiting)
		})
	}
}

func TestTransitionStartClearsError(t *testing.T) {
	s := NewState(catalog.Query{Limit: 2})
	tk := Ticket{Seq: 1}
	s = Transition(s, Started{Ticket: tk})
	s = Transition(s, Failed{Ticket: tk, Err: "boom"})
	require.Equal(t, "boom", s.Error)

	s = Transition(s, Started{Ticket: Ticket{Seq: 2}})
	assert.Empty(t, s.Error)
	assert.True(t, s.Loading())
}

func TestTransitionDoesNotMutateInput(t *testing.T) {
	s := NewState(catalog.Query{Limit: 2})
	s = loaded(t, s, 0, catalog.Page{Items: details(1, 2), HasMore: true})
	before := itemIDs(s.Items)

	tk := Ticket{Seq: s.Seq + 1, Offset: 2}
	started := Transition(s, Started{Ticket: tk})
	_ = Transition(started, Succeeded{Ticket: tk, Page: catalog.Page{Items: details(3, 4)}})

	assert.Equal(t, before, itemIDs(s.Items))
	assert.Equal(t, before, itemIDs(started.Items))
}
