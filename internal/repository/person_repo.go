package repository

import (
	"context"
	"fmt"

	"cinegraph-api/internal/db"
	"cinegraph-api/internal/models"
	"cinegraph-api/internal/paging"
)

type PersonRepository struct {
	graph db.Graph
}

func NewPersonRepository(g db.Graph) *PersonRepository {
	return &PersonRepository{graph: g}
}

func (r *PersonRepository) GetAll(ctx context.Context, p paging.Params) ([]models.Person, error) {
	out, err := r.graph.ReadTx(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		rows, err := tx.Run(ctx, personListQuery(p), map[string]any{
			"skip":  p.Skip,
			"limit": p.Limit,
		})
		if err != nil {
			return nil, err
		}
		people := make([]models.Person, 0, len(rows))
		for _, row := range rows {
			if person, ok := row["person"].(map[string]any); ok {
				people = append(people, models.Person(person))
			}
		}
		return people, nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]models.Person), nil
}

func (r *PersonRepository) GetByID(ctx context.Context, id string) (models.Person, error) {
	out, err := r.graph.ReadTx(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		rows, err := tx.Run(ctx, findPersonByIDQuery, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("%w: persona %s", ErrNotFound, id)
		}
		person, _ := rows[0]["person"].(map[string]any)
		return models.Person(person), nil
	})
	if err != nil {
		return nil, err
	}
	return out.(models.Person), nil
}
