package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/pokedex-data/internal/provider"
)

func refs(idList ...int) []provider.EntityReference {
	out := make([]provider.EntityReference, len(idList))
	for i, id := range idList {
		out[i] = provider.EntityReference{ID: id, Name: name(id)}
	}
	return out
}

func TestHydratePreservesInputOrder(t *testing.T) {
	src := newFakeSource(10)
	// Earlier references finish last.
	src.delay[name(1)] = 30 * time.Millisecond
	src.delay[name(2)] = 20 * time.Millisecond
	src.delay[name(3)] = 10 * time.Millisecond
	h := NewHydrator(src, nil, nil)

	got, err := h.Hydrate(context.Background(), refs(1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(got))
}

func TestHydrateEmptyMakesNoCalls(t *testing.T) {
	src := newFakeSource(10)
	h := NewHydrator(src, nil, nil)

	got, err := h.Hydrate(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, src.getCalls)
}

func TestHydrateIsAtomic(t *testing.T) {
	src := newFakeSource(10)
	boom := errors.New("connection reset")
	src.failIdent[name(3)] = boom
	h := NewHydrator(src, nil, nil)

	got, err := h.Hydrate(context.Background(), refs(1, 2, 3, 4))
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Nil(t, got)
}

func TestHydrateIDs(t *testing.T) {
	src := newFakeSource(10)
	h := NewHydrator(src, nil, nil)

	got, err := h.HydrateIDs(context.Background(), []int{5, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1}, ids(got))
	assert.ElementsMatch(t, []string{"5", "1"}, src.getCalls)
}
