package service

import (
	"context"

	"cinegraph-api/internal/models"
	"cinegraph-api/internal/repository"
)

type GenreService struct {
	genres *repository.GenreRepository
}

func NewGenreService(g *repository.GenreRepository) *GenreService {
	return &GenreService{genres: g}
}

func (s *GenreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	return s.genres.GetAll(ctx)
}

func (s *GenreService) GetByName(ctx context.Context, name string) (*models.Genre, error) {
	return s.genres.GetByName(ctx, name)
}
