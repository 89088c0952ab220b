// Package users provides database operations for user management.
//
// # Usage
//
//	repo := users.NewRepository(db, cfg.Auth.BcryptCost)
//	user, err := repo.CreateUser(users.NewUser{Email: email, RawPassword: raw})
package users

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/wishlist/internal/auth"
	"github.com/mrlokans/wishlist/internal/database"
	"github.com/mrlokans/wishlist/internal/entities"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailRequired = errors.New("email is required")
)

// NewUser holds the fields accepted when creating a user. ID is optional.
type NewUser struct {
	ID          string
	Email       string
	RawPassword string
	FirstName   string
	LastName    string
}

// Repository handles all user database operations.
type Repository struct {
	db         *gorm.DB
	bcryptCost int
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB, bcryptCost int) *Repository {
	return &Repository{db: db, bcryptCost: bcryptCost}
}

// CreateUser stores a new user with a hashed password.
func (r *Repository) CreateUser(params NewUser) (*entities.User, error) {
	if params.Email == "" {
		return nil, ErrEmailRequired
	}

	hash, err := auth.HashPassword(params.RawPassword, r.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:       params.ID,
		Email:    params.Email,
		Password: hash,
	}
	if params.FirstName != "" {
		user.FirstName = &params.FirstName
	}
	if params.LastName != "" {
		user.LastName = &params.LastName
	}

	if err := r.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by ID.
func (r *Repository) GetUserByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Exists reports whether a user with the given ID is stored.
func (r *Repository) Exists(id string) (bool, error) {
	return Exists(r.db, id)
}

// VerifyPassword checks a candidate password against the user's stored hash.
func (r *Repository) VerifyPassword(id, candidate string) (bool, error) {
	user, err := r.GetUserByID(id)
	if err != nil {
		return false, err
	}
	err = auth.CheckPassword(candidate, user.Password)
	if errors.Is(err, auth.ErrInvalidPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Exists reports whether a user row with the given ID is visible to db.
// Accepts a transaction so callers can check inside their own unit of work.
func Exists(db *gorm.DB, id string) (bool, error) {
	var count int64
	err := db.Model(&entities.User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
