package repository

import (
	"context"
	"fmt"

	"github.com/linkt-app/linkt-api/internal/domain"
	"github.com/linkt-app/linkt-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindPendingOrganizers(ctx context.Context) ([]dao.User, error)
	ApproveOrganizer(ctx context.Context, id uint) error
	CountByType(ctx context.Context, userType string) (int64, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, userDomainToDAO(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return userDAOToDomain(created), nil
}

func (r *UserRepository) CreateOrganizer(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error) {
	daoUser := userDomainToDAO(organizer.User)
	daoUser.OrganizationName = organizer.OrganizationName
	daoUser.IsApproved = organizer.IsApproved

	created, err := r.dao.Insert(ctx, daoUser)
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return organizerDAOToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return userDAOToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return userDAOToDomain(found), nil
}

func (r *UserRepository) FindPendingOrganizers(ctx context.Context) ([]domain.Organizer, error) {
	found, err := r.dao.FindPendingOrganizers(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPendingOrganizers -> %w", err)
	}

	organizers := make([]domain.Organizer, len(found))
	for i, u := range found {
		organizers[i] = organizerDAOToDomain(u)
	}

	return organizers, nil
}

func (r *UserRepository) ApproveOrganizer(ctx context.Context, id uint) error {
	if err := r.dao.ApproveOrganizer(ctx, id); err != nil {
		return fmt.Errorf("r.dao.ApproveOrganizer -> %w", err)
	}

	return nil
}

func (r *UserRepository) CountByType(ctx context.Context, userType string) (int64, error) {
	count, err := r.dao.CountByType(ctx, userType)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByType -> %w", err)
	}

	return count, nil
}

func userDomainToDAO(u domain.User) dao.User {
	return dao.User{
		UserID:    u.UserID,
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserType:  u.UserType,
	}
}

func userDAOToDomain(u dao.User) domain.User {
	return domain.User{
		UserID:    u.UserID,
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserType:  u.UserType,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func organizerDAOToDomain(u dao.User) domain.Organizer {
	return domain.Organizer{
		User:             userDAOToDomain(u),
		OrganizationName: u.OrganizationName,
		IsApproved:       u.IsApproved,
	}
}
