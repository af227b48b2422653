package repository

import (
	"context"
	"fmt"

	"cinegraph-api/internal/db"
	"cinegraph-api/internal/models"
)

type GenreRepository struct {
	graph db.Graph
}

func NewGenreRepository(g db.Graph) *GenreRepository {
	return &GenreRepository{graph: g}
}

func (r *GenreRepository) GetAll(ctx context.Context) ([]models.Genre, error) {
	out, err := r.graph.ReadTx(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		rows, err := tx.Run(ctx, allGenresQuery, nil)
		if err != nil {
			return nil, err
		}
		return genresFrom(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]models.Genre), nil
}

func (r *GenreRepository) GetByName(ctx context.Context, name string) (*models.Genre, error) {
	out, err := r.graph.ReadTx(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		rows, err := tx.Run(ctx, genreByNameQuery, map[string]any{"name": name})
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("%w: género %s", ErrNotFound, name)
		}
		gs := genresFrom(rows)
		return &gs[0], nil
	})
	if err != nil {
		return nil, err
	}
	return out.(*models.Genre), nil
}

func genresFrom(rows []map[string]any) []models.Genre {
	genres := make([]models.Genre, 0, len(rows))
	for _, row := range rows {
		name, _ := row["name"].(string)
		movies, _ := row["movies"].(int64)
		genres = append(genres, models.Genre{Name: name, Movies: movies})
	}
	return genres
}
