package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vlex127/ukoni/internal/repository"
)

type healthService struct {
	repo *repository.Repository
}

func newHealthService(repo *repository.Repository) Health {
	return &healthService{
		repo: repo,
	}
}

func (s *healthService) Check(ctx context.Context) error {
	var errs []error
	if err := s.repo.Postgres.Ping(ctx); err != nil {
		errs = append(errs, fmt.Errorf("postgres: %w", err))
	}
	if err := s.repo.Redis.Ping(ctx); err != nil {
		errs = append(errs, fmt.Errorf("redis: %w", err))
	}
	return errors.Join(errs...)
}
