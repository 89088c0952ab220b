// Package books provides database operations for the book catalogue.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.CreateBook(&entities.Book{Title: title, ISBN: isbn, PublicationDate: date})
package books

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/wishlist/internal/database"
	"github.com/mrlokans/wishlist/internal/entities"
)

// MaxISBNLength leaves room beyond the 13 digits of current ISBNs.
const MaxISBNLength = 20

var (
	ErrBookNotFound            = errors.New("book not found")
	ErrTitleRequired           = errors.New("title is required")
	ErrISBNRequired            = errors.New("isbn is required")
	ErrISBNTooLong             = fmt.Errorf("isbn exceeds maximum length of %d characters", MaxISBNLength)
	ErrPublicationDateRequired = errors.New("publication date is required")
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBook validates and stores a book. An identifier is assigned when
// book.ID is empty.
func (r *Repository) CreateBook(book *entities.Book) (*entities.Book, error) {
	if err := validate(book); err != nil {
		return nil, err
	}
	if err := r.db.Create(book).Error; err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return book, nil
}

// GetBookByID retrieves a book by its ID.
func (r *Repository) GetBookByID(id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("id = ?", id).First(&book).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

// Exists reports whether a book with the given ID is stored.
func (r *Repository) Exists(id string) (bool, error) {
	return Exists(r.db, id)
}

// Exists reports whether a book row with the given ID is visible to db.
func Exists(db *gorm.DB, id string) (bool, error) {
	var count int64
	err := db.Model(&entities.Book{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func validate(book *entities.Book) error {
	switch {
	case book.Title == "":
		return ErrTitleRequired
	case book.ISBN == "":
		return ErrISBNRequired
	case len(book.ISBN) > MaxISBNLength:
		return ErrISBNTooLong
	case book.PublicationDate.IsZero():
		return ErrPublicationDateRequired
	}
	return nil
}
