// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	crudRepository[entity.User, model.UserModel]
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{crudRepository[entity.User, model.UserModel]{
		db:        db,
		name:      "user",
		toEntity:  toUserDomain,
		toModel:   fromUserDomain,
		duplicate: domainerrors.ErrUserAlreadyExists,
	}}
}

// FindByEmail retrieves a single user by their email address. Emails are
// compared case-insensitively.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(ctx, "find by email", func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
	})
}

// toUserDomain converts a UserModel to a domain User entity.
func toUserDomain(m *model.UserModel) *entity.User {
	var roles entity.Roles
	if m.Roles != "" {
		roles = entity.RolesFromStrings(strings.Split(m.Roles, ","))
	}

	return &entity.User{
		ID:           m.ID,
		Avatar:       m.Avatar,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		BirthDate:    m.BirthDate,
		PasswordHash: m.PasswordHash,
		PhoneNumber:  m.PhoneNumber,
		Roles:        roles,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a UserModel.
func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Avatar:       u.Avatar,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		BirthDate:    u.BirthDate,
		PasswordHash: u.PasswordHash,
		PhoneNumber:  u.PhoneNumber,
		Roles:        strings.Join(u.Roles.ToStrings(), ","),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
