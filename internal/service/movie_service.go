// internal/service/movie_service.go
package service

import (
	"context"

	"cinegraph-api/internal/models"
	"cinegraph-api/internal/paging"
	"cinegraph-api/internal/repository"
)

type MovieService struct {
	movies *repository.MovieRepository
	pages  *paging.Policy
}

func NewMovieService(m *repository.MovieRepository, pages *paging.Policy) *MovieService {
	return &MovieService{movies: m, pages: pages}
}

func (s *MovieService) All(ctx context.Context, sort, order string, limit, skip int, userID string) ([]models.Movie, error) {
	return s.movies.All(ctx, s.pages.Normalize(sort, order, limit, skip), userID)
}

func (s *MovieService) GetByGenre(ctx context.Context, name, sort, order string, limit, skip int, userID string) ([]models.Movie, error) {
	return s.movies.ByGenre(ctx, name, s.pages.Normalize(sort, order, limit, skip), userID)
}

func (s *MovieService) GetForActor(ctx context.Context, id, sort, order string, limit, skip int, userID string) ([]models.Movie, error) {
	return s.movies.ByActor(ctx, id, s.pages.Normalize(sort, order, limit, skip), userID)
}

func (s *MovieService) GetForDirector(ctx context.Context, id, sort, order string, limit, skip int, userID string) ([]models.Movie, error) {
	return s.movies.ByDirector(ctx, id, s.pages.Normalize(sort, order, limit, skip), userID)
}

func (s *MovieService) FindByID(ctx context.Context, id, userID string) (models.Movie, error) {
	return s.movies.FindByID(ctx, id, userID)
}

// GetSimilar no acepta sort/order: el orden lo decide el ranking de
// similitud, el caller solo pagina.
func (s *MovieService) GetSimilar(ctx context.Context, id string, limit, skip int, userID string) ([]models.Movie, error) {
	limit, skip = s.pages.Window(limit, skip)
	return s.movies.Similar(ctx, id, limit, skip, userID)
}

func (s *MovieService) GetUserFavorites(ctx context.Context, userID string) ([]string, error) {
	return s.movies.UserFavorites(ctx, userID)
}
