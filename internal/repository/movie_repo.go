// internal/repository/movie_repo.go
package repository

import (
	"context"
	"fmt"

	"cinegraph-api/internal/db"
	"cinegraph-api/internal/models"
	"cinegraph-api/internal/paging"
)

type MovieRepository struct {
	graph db.Graph
}

func NewMovieRepository(g db.Graph) *MovieRepository {
	return &MovieRepository{graph: g}
}

func (r *MovieRepository) All(ctx context.Context, p paging.Params, userID string) ([]models.Movie, error) {
	return r.list(ctx, matchAllMovies, nil, p, userID)
}

func (r *MovieRepository) ByGenre(ctx context.Context, name string, p paging.Params, userID string) ([]models.Movie, error) {
	return r.list(ctx, matchMoviesInGenre, map[string]any{"name": name}, p, userID)
}

func (r *MovieRepository) ByActor(ctx context.Context, id string, p paging.Params, userID string) ([]models.Movie, error) {
	return r.list(ctx, matchMoviesForActor, map[string]any{"id": id}, p, userID)
}

func (r *MovieRepository) ByDirector(ctx context.Context, id string, p paging.Params, userID string) ([]models.Movie, error) {
	return r.list(ctx, matchMoviesForDirector, map[string]any{"id": id}, p, userID)
}

// list ejecuta el listado y la búsqueda de favoritos del usuario dentro
// de la misma transacción de lectura (mismo snapshot).
func (r *MovieRepository) list(ctx context.Context, match string, extra map[string]any, p paging.Params, userID string) ([]models.Movie, error) {
	out, err := r.graph.ReadTx(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		favorites, err := favoriteIDsTx(ctx, tx, userID)
		if err != nil {
			return nil, err
		}

		params := map[string]any{
			"skip":      p.Skip,
			"limit":     p.Limit,
			"favorites": favorites,
		}
		for k, v := range extra {
			params[k] = v
		}

		rows, err := tx.Run(ctx, movieListQuery(match, p), params)
		if err != nil {
			return nil, err
		}
		return moviesFrom(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]models.Movie), nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id, userID string) (models.Movie, error) {
	out, err := r.graph.ReadTx(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		favorites, err := favoriteIDsTx(ctx, tx, userID)
		if err != nil {
			return nil, err
		}

		rows, err := tx.Run(ctx, findMovieByIDQuery, map[string]any{
			"id":        id,
			"favorites": favorites,
		})
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("%w: película %s", ErrNotFound, id)
		}

		m, _ := rows[0]["movie"].(map[string]any)
		return models.Movie(m), nil
	})
	if err != nil {
		return nil, err
	}
	return out.(models.Movie), nil
}

// Similar devuelve las películas rankeadas por conexiones compartidas
// con la película objetivo. El SKIP/LIMIT se aplica después del ranking
// (lo hace el propio Cypher). Si el objetivo no existe es ErrNotFound,
// que no es lo mismo que una película sin conexiones (lista vacía).
func (r *MovieRepository) Similar(ctx context.Context, id string, limit, skip int, userID string) ([]models.Movie, error) {
	out, err := r.graph.ReadTx(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		exists, err := tx.Run(ctx, movieExistsQuery, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		if len(exists) == 0 {
			return nil, fmt.Errorf("%w: película %s", ErrNotFound, id)
		}

		favorites, err := favoriteIDsTx(ctx, tx, userID)
		if err != nil {
			return nil, err
		}

		rows, err := tx.Run(ctx, similarMoviesQuery, map[string]any{
			"id":        id,
			"skip":      skip,
			"limit":     limit,
			"favorites": favorites,
		})
		if err != nil {
			return nil, err
		}
		return moviesFrom(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]models.Movie), nil
}

// UserFavorites devuelve solo los tmdbId de los favoritos del usuario.
func (r *MovieRepository) UserFavorites(ctx context.Context, userID string) ([]string, error) {
	out, err := r.graph.ReadTx(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		ids, err := favoriteIDsTx(ctx, tx, userID)
		if err != nil {
			return nil, err
		}
		strs := make([]string, 0, len(ids))
		for _, id := range ids {
			if s, ok := id.(string); ok {
				strs = append(strs, s)
			}
		}
		return strs, nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]string), nil
}

// favoriteIDsTx corre dentro de la transacción del listado. Sin usuario
// devuelve lista vacía, con lo que `m.tmdbId IN $favorites` es false
// para todas las filas.
func favoriteIDsTx(ctx context.Context, tx db.Tx, userID string) ([]any, error) {
	if userID == "" {
		return []any{}, nil
	}
	rows, err := tx.Run(ctx, userFavoritesQuery, map[string]any{"userId": userID})
	if err != nil {
		return nil, err
	}
	ids := make([]any, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row["id"])
	}
	return ids, nil
}

func moviesFrom(rows []map[string]any) []models.Movie {
	movies := make([]models.Movie, 0, len(rows))
	for _, row := range rows {
		if m, ok := row["movie"].(map[string]any); ok {
			movies = append(movies, models.Movie(m))
		}
	}
	return movies
}
