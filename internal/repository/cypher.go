// internal/repository/cypher.go
//
// Construcción de los Cypher parametrizados. skip/limit/ids/favoritos
// viajan siempre como parámetros bound; lo único que se interpola es el
// campo de orden, que viene de la whitelist de paging y nunca del caller.
package repository

import (
	"fmt"
	"strings"

	"cinegraph-api/internal/paging"
)

// Fragmentos MATCH de cada variante de listado de películas.
const (
	matchAllMovies         = "MATCH (m:Movie)"
	matchMoviesInGenre     = "MATCH (m:Movie)-[:IN_GENRE]->(:Genre {name: $name})"
	matchMoviesForActor    = "MATCH (:Person {tmdbId: $id})-[:ACTED_IN]->(m:Movie)"
	matchMoviesForDirector = "MATCH (:Person {tmdbId: $id})-[:DIRECTED]->(m:Movie)"
)

// movieListQuery arma el listado paginado: filtra las películas sin la
// propiedad de orden (no deben aparecer en un resultado ordenado por
// ella), proyecta favorite contra $favorites y pagina con SKIP/LIMIT.
func movieListQuery(match string, p paging.Params) string {
	return strings.Join([]string{
		match,
		fmt.Sprintf("WHERE m.`%s` IS NOT NULL", p.Sort),
		"RETURN m { .*, favorite: m.tmdbId IN $favorites } AS movie",
		fmt.Sprintf("ORDER BY m.`%s` %s", p.Sort, p.Order),
		"SKIP $skip",
		"LIMIT $limit",
	}, "\n")
}

// Detalle de una película: elenco (ordenado por nombre, el dataset no
// trae orden de cartel), directores, géneros y el conteo de RATED
// entrantes, todo en una sola proyección.
const findMovieByIDQuery = `MATCH (m:Movie {tmdbId: $id})
RETURN m {
  .*,
  actors: COLLECT { MATCH (p:Person)-[r:ACTED_IN]->(m) RETURN p { .*, role: r.role } ORDER BY p.name },
  directors: COLLECT { MATCH (p:Person)-[:DIRECTED]->(m) RETURN p { .* } ORDER BY p.name },
  genres: [ (m)-[:IN_GENRE]->(g:Genre) | g { .name } ],
  ratingCount: COUNT { (m)<-[:RATED]-(:User) },
  favorite: m.tmdbId IN $favorites
} AS movie`

// Ranking de similares: candidatas a un salto compartido (actor,
// director o género), score = cantidad de vecinos compartidos
// distintos (peso 1 cada uno). El desempate es por imdbRating y luego
// tmdbId para que la paginación sobre empatados sea reproducible.
// La propia película queda excluida por el WHERE.
const similarMoviesQuery = `MATCH (target:Movie {tmdbId: $id})-[:ACTED_IN|DIRECTED|IN_GENRE]-(shared)-[:ACTED_IN|DIRECTED|IN_GENRE]-(m:Movie)
WHERE m <> target
WITH m, count(DISTINCT shared) AS score
RETURN m { .*, score: score, favorite: m.tmdbId IN $favorites } AS movie
ORDER BY score DESC, m.imdbRating DESC, m.tmdbId ASC
SKIP $skip
LIMIT $limit`

const movieExistsQuery = `MATCH (m:Movie {tmdbId: $id})
RETURN m.tmdbId AS id`

// Favoritos del usuario; se corre dentro de la misma transacción que
// la consulta principal (una sola ida a la base, nunca N+1).
const userFavoritesQuery = `MATCH (:User {userId: $userId})-[:HAS_FAVORITE]->(m:Movie)
RETURN m.tmdbId AS id
ORDER BY m.tmdbId ASC`

const allGenresQuery = `MATCH (g:Genre)
RETURN g.name AS name, COUNT { (g)<-[:IN_GENRE]-(:Movie) } AS movies
ORDER BY g.name ASC`

const genreByNameQuery = `MATCH (g:Genre {name: $name})
RETURN g.name AS name, COUNT { (g)<-[:IN_GENRE]-(:Movie) } AS movies`

func personListQuery(p paging.Params) string {
	return strings.Join([]string{
		"MATCH (p:Person)",
		fmt.Sprintf("WHERE p.`%s` IS NOT NULL", p.Sort),
		"RETURN p { .* } AS person",
		fmt.Sprintf("ORDER BY p.`%s` %s", p.Sort, p.Order),
		"SKIP $skip",
		"LIMIT $limit",
	}, "\n")
}

const findPersonByIDQuery = `MATCH (p:Person {tmdbId: $id})
RETURN p {
  .*,
  actedCount: COUNT { (p)-[:ACTED_IN]->(:Movie) },
  directedCount: COUNT { (p)-[:DIRECTED]->(:Movie) }
} AS person`
