package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/pokedex-data/internal/api/handler"
	"github.com/albapepper/pokedex-data/internal/cache"
	"github.com/albapepper/pokedex-data/internal/catalog"
	"github.com/albapepper/pokedex-data/internal/collection"
	"github.com/albapepper/pokedex-data/internal/config"
	"github.com/albapepper/pokedex-data/internal/provider"
	"github.com/albapepper/pokedex-data/internal/storage"
)

// fakeCatalog stands in for the engine, detail composer, category lister
// and hydrator at once.
type fakeCatalog struct {
	mu         sync.Mutex
	fetches    []catalog.Query
	fetchErr   error
	hydrateErr error
}

func detail(id int) provider.EntityDetail {
	return provider.EntityDetail{
		ID:         id,
		Name:       fmt.Sprintf("mon-%d", id),
		Categories: []string{"fire"},
		BaseStats:  []provider.BaseStat{{Name: "attack", Value: id}},
	}
}

func (f *fakeCatalog) Fetch(_ context.Context, q catalog.Query) (catalog.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches = append(f.fetches, q)
	if f.fetchErr != nil {
		return catalog.Page{}, f.fetchErr
	}
	items := []provider.EntityDetail{}
	for id := q.Offset + 1; id <= q.Offset+q.Limit; id++ {
		items = append(items, detail(id))
	}
	return catalog.Page{Items: items, HasMore: true}, nil
}

func (f *fakeCatalog) View(_ context.Context, ident string) (*catalog.DetailView, error) {
	if ident == "missingno" {
		return nil, fmt.Errorf("get %s: %w", ident, provider.ErrNotFound)
	}
	d := detail(4)
	return &catalog.DetailView{
		Entity:        d,
		Encounters:    []provider.Encounter{},
		Evolution:     []catalog.EvolutionStep{{Name: "mon-4", ID: 4}},
		Effectiveness: catalog.EffectivenessOf(d.Categories),
	}, nil
}

func (f *fakeCatalog) ListCategories(context.Context, int, int) (*provider.CategoryList, error) {
	return &provider.CategoryList{Count: 3, Names: []string{"fire", "shadow", "water"}}, nil
}

func (f *fakeCatalog) HydrateIDs(_ context.Context, ids []int) ([]provider.EntityDetail, error) {
	if f.hydrateErr != nil {
		return nil, f.hydrateErr
	}
	out := make([]provider.EntityDetail, len(ids))
	for i, id := range ids {
		out[i] = detail(id)
	}
	return out, nil
}

type env struct {
	router http.Handler
	cat    *fakeCatalog
	team   *collection.Team
	favs   *collection.Favorites
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemory()
	favs, err := collection.OpenFavorites(ctx, store, collection.Options{})
	require.NoError(t, err)
	team, err := collection.OpenTeam(ctx, store, collection.Options{})
	require.NoError(t, err)

	c := cache.New(true)
	t.Cleanup(c.Close)
	cat := &fakeCatalog{}
	h := handler.New(handler.Deps{
		Pages:      cat,
		Details:    cat,
		Categories: cat,
		Hydrator:   cat,
		Favorites:  favs,
		Team:       team,
		Storage:    store,
		Cache:      c,
		PageLimit:  20,
	})
	cfg := &config.Config{CORSAllowOrigins: []string{"*"}}
	return &env{router: NewRouter(h, cfg, http.NotFoundHandler()), cat: cat, team: team, favs: favs}
}

func (e *env) do(t *testing.T, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	e := newEnv(t)
	for _, path := range []string{"/health", "/health/storage", "/health/cache"} {
		rec := e.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get("X-Process-Time"), path)
	}
	rec := e.do(t, http.MethodGet, "/health/storage", "")
	assert.Equal(t, "memory", decode[map[string]any](t, rec)["driver"])
}

func TestListEntitiesDefaultPage(t *testing.T) {
	e := newEnv(t)
	rec := e.do(t, http.MethodGet, "/api/v1/entities", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))

	page := decode[handler.PageResponse](t, rec)
	assert.Len(t, page.Items, 20)
	assert.True(t, page.HasMore)
	assert.Equal(t, 20, page.Limit)

	again := e.do(t, http.MethodGet, "/api/v1/entities", "")
	assert.Equal(t, "HIT", again.Header().Get("X-Cache"))
	assert.Len(t, e.cat.fetches, 1)

	notModified := e.do(t, http.MethodGet, "/api/v1/entities", "", "If-None-Match", rec.Header().Get("ETag"))
	assert.Equal(t, http.StatusNotModified, notModified.Code)
}

func TestPurgeCacheByPrefix(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, "MISS", e.do(t, http.MethodGet, "/api/v1/entities", "").Header().Get("X-Cache"))
	require.Equal(t, "MISS", e.do(t, http.MethodGet, "/api/v1/categories", "").Header().Get("X-Cache"))

	rec := e.do(t, http.MethodDelete, "/health/cache?prefix=page:", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "purged", body["status"])
	assert.EqualValues(t, 1, body["removed"])

	assert.Equal(t, "MISS", e.do(t, http.MethodGet, "/api/v1/entities", "").Header().Get("X-Cache"))
	assert.Len(t, e.cat.fetches, 2)
	assert.Equal(t, "HIT", e.do(t, http.MethodGet, "/api/v1/categories", "").Header().Get("X-Cache"))

	rec = e.do(t, http.MethodDelete, "/health/cache", "")
	assert.EqualValues(t, 2, decode[map[string]any](t, rec)["removed"])
}

func TestListEntitiesQueryNormalization(t *testing.T) {
	e := newEnv(t)
	rec := e.do(t, http.MethodGet, "/api/v1/entities?search=%20Pikachu%20&category=Fuego&offset=0&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, e.cat.fetches, 1)
	q := e.cat.fetches[0]
	assert.Equal(t, "Pikachu", q.SearchText)
	assert.Equal(t, catalog.AllCategory, q.Category, "search wins over category")
	assert.Equal(t, 5, q.Limit)
}

func TestListEntitiesRejectsBadInput(t *testing.T) {
	tests := []string{
		"/api/v1/entities?limit=0",
		"/api/v1/entities?limit=abc",
		"/api/v1/entities?offset=-1",
	}
	for _, path := range tests {
		e := newEnv(t)
		rec := e.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Empty(t, e.cat.fetches, "no fetch for %s", path)
	}
}

func TestListEntitiesCatalogDown(t *testing.T) {
	e := newEnv(t)
	e.cat.fetchErr = fmt.Errorf("list: %w", provider.ErrNetwork)
	rec := e.do(t, http.MethodGet, "/api/v1/entities", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := decode[map[string]map[string]string](t, rec)
	assert.Equal(t, "CATALOG_UNAVAILABLE", body["error"]["code"])
}

func TestGetEntity(t *testing.T) {
	e := newEnv(t)
	rec := e.do(t, http.MethodGet, "/api/v1/entities/Charmander", "")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[catalog.DetailView](t, rec)
	assert.Equal(t, 4, view.Entity.ID)
	assert.Contains(t, view.Effectiveness.StrongAgainst, "grass")

	rec = e.do(t, http.MethodGet, "/api/v1/entities/missingno", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCategories(t *testing.T) {
	e := newEnv(t)
	rec := e.do(t, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	opts := decode[[]catalog.CategoryOption](t, rec)
	require.Len(t, opts, 3)
	assert.Equal(t, "Todos", opts[0].Name)
	assert.Equal(t, catalog.CategoryOption{Name: "Fuego", EnglishName: "fire"}, opts[1])
}

func TestFavoritesRoutes(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPut, "/api/v1/favorites/25", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = e.do(t, http.MethodPut, "/api/v1/favorites/25", "")
	assert.Equal(t, []int{25}, decode[handler.FavoritesResponse](t, rec).IDs)

	rec = e.do(t, http.MethodPost, "/api/v1/favorites/7/toggle", "")
	toggled := decode[handler.ToggleResponse](t, rec)
	assert.True(t, toggled.Favorite)
	assert.Equal(t, []int{25, 7}, toggled.IDs)

	rec = e.do(t, http.MethodGet, "/api/v1/favorites", "")
	list := decode[handler.FavoritesResponse](t, rec)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "mon-25", list.Items[0].Name)

	rec = e.do(t, http.MethodDelete, "/api/v1/favorites/25", "")
	assert.Equal(t, []int{7}, decode[handler.FavoritesResponse](t, rec).IDs)

	rec = e.do(t, http.MethodDelete, "/api/v1/favorites", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, e.favs.IDs())

	rec = e.do(t, http.MethodPut, "/api/v1/favorites/zero", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTeamConflictWorkflow(t *testing.T) {
	e := newEnv(t)
	for id := 1; id <= 6; id++ {
		rec := e.do(t, http.MethodPost, fmt.Sprintf("/api/v1/team/%d", id), "")
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := e.do(t, http.MethodPost, "/api/v1/team/7", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	conflict := decode[handler.ConflictResponse](t, rec)
	assert.Equal(t, "TEAM_FULL", conflict.Error.Code)
	assert.Equal(t, 7, conflict.Conflict.Pending)
	assert.Len(t, conflict.Conflict.Members, 6)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, e.team.IDs())

	rec = e.do(t, http.MethodPost, "/api/v1/team/replace", `{"oldId":42,"newId":7}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPost, "/api/v1/team/replace", `{"oldId":3,"newId":7}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{1, 2, 7, 4, 5, 6}, decode[handler.TeamIDsResponse](t, rec).IDs)

	rec = e.do(t, http.MethodGet, "/api/v1/team", "")
	require.Equal(t, http.StatusOK, rec.Code)
	team := decode[handler.TeamResponse](t, rec)
	assert.True(t, team.Full)
	assert.Equal(t, 7, team.Slots[2].ID)
	assert.Equal(t, 4, team.AverageAttack) // (1+2+7+4+5+6)/6 = 4.17
	assert.Equal(t, []string{"fire"}, team.UniqueCategories)
}

func TestTeamReplaceValidation(t *testing.T) {
	e := newEnv(t)
	for _, body := range []string{`not json`, `{"oldId":0,"newId":3}`, `{"newId":3}`} {
		rec := e.do(t, http.MethodPost, "/api/v1/team/replace", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestTeamRemoveAndClear(t *testing.T) {
	e := newEnv(t)
	e.do(t, http.MethodPost, "/api/v1/team/1", "")
	e.do(t, http.MethodPost, "/api/v1/team/2", "")

	rec := e.do(t, http.MethodDelete, "/api/v1/team/1", "")
	assert.Equal(t, []int{2}, decode[handler.TeamIDsResponse](t, rec).IDs)

	rec = e.do(t, http.MethodDelete, "/api/v1/team", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, e.team.IDs())
}

func TestRateLimit(t *testing.T) {
	mw := RateLimitMiddleware(2, time.Minute)
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }))

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			assert.Equal(t, "60", rec.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{200, 429, 429}, codes)
}
