package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/pokedex-data/internal/catalog"
	"github.com/albapepper/pokedex-data/internal/collection"
	"github.com/albapepper/pokedex-data/internal/notify"
	"github.com/albapepper/pokedex-data/internal/pagination"
	"github.com/albapepper/pokedex-data/internal/provider"
)

func conflictOf(ids ...int) *collection.Conflict {
	c := &collection.Conflict{Pending: 7}
	for _, id := range ids {
		c.Members = append(c.Members, provider.EntityDetail{ID: id, Name: "mon", Categories: []string{"fire"}})
	}
	return c
}

func TestChooseEviction(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  int
		wantOK  bool
		wantErr error
	}{
		{name: "valid slot", input: "3\n", wantID: 30, wantOK: true},
		{name: "retry after junk", input: "x\n9\n1\n", wantID: 10, wantOK: true},
		{name: "cancel", input: "\n", wantOK: false},
		{name: "eof", input: "", wantErr: errNoChoice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			id, ok, err := chooseEviction(strings.NewReader(tt.input), &out, conflictOf(10, 20, 30, 40, 50, 60))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			assert.Contains(t, out.String(), "Team is full")
		})
	}
}

type scriptedFetcher struct {
	total int
	fail  map[int]error
}

func (f scriptedFetcher) Fetch(_ context.Context, q catalog.Query) (catalog.Page, error) {
	if err := f.fail[q.Offset]; err != nil {
		return catalog.Page{}, err
	}
	page := catalog.Page{Items: []provider.EntityDetail{}}
	for id := q.Offset + 1; id <= f.total && id <= q.Offset+q.Limit; id++ {
		page.Items = append(page.Items, provider.EntityDetail{ID: id})
	}
	page.HasMore = q.Offset+q.Limit < f.total
	return page, nil
}

func TestBrowse(t *testing.T) {
	ctx := context.Background()
	var warn bytes.Buffer

	ctrl := pagination.NewController(scriptedFetcher{total: 25}, catalog.Query{Limit: 10}, nil)
	state, err := browse(ctx, ctrl, 2, &warn)
	require.NoError(t, err)
	assert.Len(t, state.Items, 20)
	assert.True(t, state.HasMore)

	ctrl = pagination.NewController(scriptedFetcher{total: 25}, catalog.Query{Limit: 10}, nil)
	state, err = browse(ctx, ctrl, 10, &warn)
	require.NoError(t, err)
	assert.Len(t, state.Items, 25)
	assert.False(t, state.HasMore)

	ctrl = pagination.NewController(scriptedFetcher{total: 25, fail: map[int]error{10: errors.New("timeout")}}, catalog.Query{Limit: 10}, nil)
	state, err = browse(ctx, ctrl, 3, &warn)
	require.NoError(t, err)
	assert.Len(t, state.Items, 10)
	assert.Contains(t, warn.String(), "timeout")

	ctrl = pagination.NewController(scriptedFetcher{total: 25, fail: map[int]error{0: errors.New("offline")}}, catalog.Query{Limit: 10}, nil)
	_, err = browse(ctx, ctrl, 1, &warn)
	assert.ErrorContains(t, err, "offline")
}

func TestPrintSink(t *testing.T) {
	var out bytes.Buffer
	s := printSink{w: &out}
	s.Notify(context.Background(), notify.Event{Kind: notify.FavoriteAdded, ID: 25})
	s.Notify(context.Background(), notify.Event{Kind: notify.TeamCleared})
	assert.Equal(t, "Added to favorites (#25)\nTeam cleared\n", out.String())
}

func TestCommandTree(t *testing.T) {
	root := newRootCmd()
	for _, path := range [][]string{
		{"browse"}, {"search"}, {"detail"}, {"types"},
		{"favorites", "list"}, {"favorites", "add"}, {"favorites", "remove"}, {"favorites", "toggle"}, {"favorites", "clear"},
		{"team", "list"}, {"team", "add"}, {"team", "remove"}, {"team", "replace"}, {"team", "clear"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
	add, _, _ := root.Find([]string{"team", "add"})
	assert.NotNil(t, add.Flags().Lookup("evict"))
}

func TestWriteEntities(t *testing.T) {
	var out bytes.Buffer
	items := []provider.EntityDetail{{ID: 6, Name: "charizard", Categories: []string{"fire", "flying"},
		BaseStats: []provider.BaseStat{{Name: "attack", Value: 84}}}}
	require.NoError(t, writeEntities(&out, items, true))
	assert.Contains(t, out.String(), "charizard")
	assert.Contains(t, out.String(), "Fuego/Volador")
	assert.Contains(t, out.String(), "84")
}
