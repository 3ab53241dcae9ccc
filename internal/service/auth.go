package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/linkt-app/linkt-api/internal/domain"
	"github.com/linkt-app/linkt-api/internal/repository"
)

var (
	ErrUserEmailExists = repository.ErrUserEmailExists
	ErrWrongPassword   = errors.New("wrong password")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	CreateOrganizer(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// RegisterStudent creates a student account with a bcrypt-hashed password.
func (s *AuthService) RegisterStudent(ctx context.Context, user domain.User) (domain.User, error) {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = hashed
	user.UserType = domain.UserTypeStudent

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// RegisterOrganizer creates an organizer account. Organizers start
// unapproved; an administrator flips the flag later.
func (s *AuthService) RegisterOrganizer(ctx context.Context, organizer domain.Organizer) (domain.User, error) {
	hashed, err := hashPassword(organizer.Password)
	if err != nil {
		return domain.User{}, err
	}
	organizer.Password = hashed
	organizer.UserType = domain.UserTypeOrganizer
	organizer.IsApproved = false

	created, err := s.repo.CreateOrganizer(ctx, organizer)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.CreateOrganizer -> %w", err)
	}

	return created.User, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
