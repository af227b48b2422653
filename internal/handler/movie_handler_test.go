package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinegraph-api/internal/db"
	"cinegraph-api/internal/models"
	"cinegraph-api/internal/paging"
	"cinegraph-api/internal/repository"
	"cinegraph-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type txCall struct {
	cypher string
	params map[string]any
}

type fakeTx struct {
	calls   []txCall
	replies [][]map[string]any
}

func (f *fakeTx) Run(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	f.calls = append(f.calls, txCall{cypher: cypher, params: params})
	if len(f.replies) == 0 {
		return nil, nil
	}
	rows := f.replies[0]
	f.replies = f.replies[1:]
	return rows, nil
}

type fakeGraph struct {
	tx  *fakeTx
	err error
}

func (g *fakeGraph) ReadTx(ctx context.Context, work db.TxWork) (any, error) {
	if g.err != nil {
		return nil, g.err
	}
	return work(ctx, g.tx)
}

func testRouter(tx *fakeTx, gerr error) *chi.Mux {
	repo := repository.NewMovieRepository(&fakeGraph{tx: tx, err: gerr})
	svc := service.NewMovieService(repo, paging.NewPolicy("title", paging.MovieSorts, 100))
	h := NewMovieHandler(svc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(JWTOptional(testSecret))
		r.Get("/movies", h.List)
		r.Get("/movies/{id}", h.Get)
		r.Get("/movies/{id}/similar", h.Similar)
	})
	r.Group(func(r chi.Router) {
		r.Use(JWTAuth(testSecret))
		r.Get("/account/favorites", h.Favorites)
	})
	return r
}

func bearerToken(t *testing.T, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func TestListNormalizesQueryParams(t *testing.T) {
	tx := &fakeTx{replies: [][]map[string]any{
		{{"movie": map[string]any{"tmdbId": "m1", "title": "A", "favorite": false}}},
	}}
	r := testRouter(tx, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/movies?limit=5000&skip=-2&sort=bogus&order=desc", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// parámetros corregidos en silencio, no rechazados
	require.Len(t, tx.calls, 1)
	assert.Equal(t, 100, tx.calls[0].params["limit"])
	assert.Equal(t, 0, tx.calls[0].params["skip"])
	assert.Contains(t, tx.calls[0].cypher, "ORDER BY m.`title` DESC")

	var movies []models.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movies))
	require.Len(t, movies, 1)
	assert.Equal(t, "m1", movies[0].TmdbID())
}

func TestListWithTokenAugmentsFavorites(t *testing.T) {
	tx := &fakeTx{replies: [][]map[string]any{
		{{"id": "m1"}},
		{{"movie": map[string]any{"tmdbId": "m1", "title": "A", "favorite": true}}},
	}}
	r := testRouter(tx, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Authorization", bearerToken(t, "u1"))
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, tx.calls, 2)
	assert.Equal(t, "u1", tx.calls[0].params["userId"])
	assert.Equal(t, []any{"m1"}, tx.calls[1].params["favorites"])
}

func TestListInvalidTokenIsAnonymous(t *testing.T) {
	tx := &fakeTx{replies: [][]map[string]any{
		{{"movie": map[string]any{"tmdbId": "m1", "title": "A", "favorite": false}}},
	}}
	r := testRouter(tx, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Authorization", "Bearer basura")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// anónimo: no hay consulta de favoritos
	require.Len(t, tx.calls, 1)
	assert.Equal(t, []any{}, tx.calls[0].params["favorites"])
}

func TestGetNotFound(t *testing.T) {
	tx := &fakeTx{replies: [][]map[string]any{{}}}
	r := testRouter(tx, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/movies/nope", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSimilarNotFound(t *testing.T) {
	tx := &fakeTx{replies: [][]map[string]any{{}}}
	r := testRouter(tx, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/movies/nope/similar", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSimilarClampsWindow(t *testing.T) {
	tx := &fakeTx{replies: [][]map[string]any{
		{{"id": "m1"}},
		{{"movie": map[string]any{"tmdbId": "m2", "title": "B", "favorite": false}}},
	}}
	r := testRouter(tx, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/movies/m1/similar?limit=9999&skip=-1", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	sim := tx.calls[1]
	assert.Equal(t, 100, sim.params["limit"])
	assert.Equal(t, 0, sim.params["skip"])
}

func TestUnavailableIsRetryable(t *testing.T) {
	gerr := fmt.Errorf("%w: timeout", db.ErrUnavailable)
	r := testRouter(&fakeTx{}, gerr)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestFavoritesRequiresToken(t *testing.T) {
	r := testRouter(&fakeTx{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/account/favorites", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFavoritesWithToken(t *testing.T) {
	tx := &fakeTx{replies: [][]map[string]any{
		{{"id": "m1"}, {"id": "m2"}},
	}}
	r := testRouter(tx, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/account/favorites", nil)
	req.Header.Set("Authorization", bearerToken(t, "u1"))
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", tx.calls[0].params["userId"])

	var ids []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ids))
	assert.Equal(t, []string{"m1", "m2"}, ids)
}

func TestUserIDFromContextEmpty(t *testing.T) {
	assert.Equal(t, "", UserIDFromContext(context.Background()))
}
