package service

import (
	"context"

	"cinegraph-api/internal/models"
	"cinegraph-api/internal/paging"
	"cinegraph-api/internal/repository"
)

type PersonService struct {
	people *repository.PersonRepository
	pages  *paging.Policy
}

func NewPersonService(p *repository.PersonRepository, pages *paging.Policy) *PersonService {
	return &PersonService{people: p, pages: pages}
}

func (s *PersonService) GetAll(ctx context.Context, sort, order string, limit, skip int) ([]models.Person, error) {
	return s.people.GetAll(ctx, s.pages.Normalize(sort, order, limit, skip))
}

func (s *PersonService) GetByID(ctx context.Context, id string) (models.Person, error) {
	return s.people.GetByID(ctx, id)
}
