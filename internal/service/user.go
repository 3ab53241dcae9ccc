package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/linkt-app/linkt-api/internal/domain"
	"github.com/linkt-app/linkt-api/internal/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindPendingOrganizers(ctx context.Context) ([]domain.Organizer, error)
	ApproveOrganizer(ctx context.Context, id uint) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) GetPendingOrganizers(ctx context.Context) ([]domain.Organizer, error) {
	organizers, err := s.repo.FindPendingOrganizers(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPendingOrganizers -> %w", err)
	}

	return organizers, nil
}

func (s *UserService) ApproveOrganizer(ctx context.Context, id uint) error {
	if err := s.repo.ApproveOrganizer(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}

		return fmt.Errorf("s.repo.ApproveOrganizer -> %w", err)
	}

	return nil
}
