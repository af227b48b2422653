package repository

import (
	"strings"
	"testing"

	"cinegraph-api/internal/paging"

	"github.com/stretchr/testify/assert"
)

func TestMovieListQuery(t *testing.T) {
	p := paging.Params{Sort: "imdbRating", Order: "DESC", Limit: 6, Skip: 0}
	q := movieListQuery(matchAllMovies, p)

	// las películas sin la propiedad de orden no entran al resultado
	assert.Contains(t, q, "WHERE m.`imdbRating` IS NOT NULL")
	assert.Contains(t, q, "ORDER BY m.`imdbRating` DESC")

	// skip/limit siempre como parámetros bound, nunca interpolados
	assert.Contains(t, q, "SKIP $skip")
	assert.Contains(t, q, "LIMIT $limit")

	// favorite sale de la misma proyección
	assert.Contains(t, q, "favorite: m.tmdbId IN $favorites")
}

func TestMovieListQueryFilterVariants(t *testing.T) {
	p := paging.Params{Sort: "title", Order: "ASC", Limit: 6, Skip: 0}

	assert.Contains(t, movieListQuery(matchMoviesInGenre, p), "[:IN_GENRE]->(:Genre {name: $name})")
	assert.Contains(t, movieListQuery(matchMoviesForActor, p), "(:Person {tmdbId: $id})-[:ACTED_IN]->(m:Movie)")
	assert.Contains(t, movieListQuery(matchMoviesForDirector, p), "(:Person {tmdbId: $id})-[:DIRECTED]->(m:Movie)")
}

func TestSimilarMoviesQuery(t *testing.T) {
	// la propia película nunca aparece entre sus similares
	assert.Contains(t, similarMoviesQuery, "WHERE m <> target")

	// score = conexiones compartidas distintas, peso 1 cada una
	assert.Contains(t, similarMoviesQuery, "count(DISTINCT shared) AS score")

	// desempate determinista para que la paginación sea reproducible
	assert.Contains(t, similarMoviesQuery, "ORDER BY score DESC, m.imdbRating DESC, m.tmdbId ASC")

	// la ventana se aplica después del ranking
	order := strings.Index(similarMoviesQuery, "ORDER BY score")
	skip := strings.Index(similarMoviesQuery, "SKIP $skip")
	limit := strings.Index(similarMoviesQuery, "LIMIT $limit")
	assert.True(t, order < skip && skip < limit)
}

func TestFindMovieByIDQuery(t *testing.T) {
	assert.Contains(t, findMovieByIDQuery, "MATCH (m:Movie {tmdbId: $id})")
	assert.Contains(t, findMovieByIDQuery, "actors:")
	assert.Contains(t, findMovieByIDQuery, "ORDER BY p.name")
	assert.Contains(t, findMovieByIDQuery, "directors:")
	assert.Contains(t, findMovieByIDQuery, "genres:")
	assert.Contains(t, findMovieByIDQuery, "ratingCount: COUNT { (m)<-[:RATED]-(:User) }")
	assert.Contains(t, findMovieByIDQuery, "favorite: m.tmdbId IN $favorites")
}

func TestPersonListQuery(t *testing.T) {
	p := paging.Params{Sort: "name", Order: "ASC", Limit: 6, Skip: 0}
	q := personListQuery(p)

	assert.Contains(t, q, "WHERE p.`name` IS NOT NULL")
	assert.Contains(t, q, "ORDER BY p.`name` ASC")
	assert.Contains(t, q, "SKIP $skip")
}
