// Package wishlists owns the wishlist association table, which links users to
// books under a shared wishlist identifier.
//
// There is no wishlist row of its own. A wishlist is the set of entries that
// share a wishlist_id, so a wishlist with no entries does not exist.
//
// # Usage
//
//	repo := wishlists.NewRepository(db)
//	entry, err := repo.InsertEntry(ctx, userID, bookID, "") // starts a new wishlist
//	list, err := repo.ListEntries(ctx, entry.WishlistID)
//	removed, err := repo.RemoveEntry(ctx, entry.WishlistID, bookID)
package wishlists

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/wishlist/internal/database"
	"github.com/mrlokans/wishlist/internal/database/books"
	"github.com/mrlokans/wishlist/internal/database/users"
	"github.com/mrlokans/wishlist/internal/entities"
	"github.com/mrlokans/wishlist/internal/identifier"
)

var (
	// ErrUserNotFound and ErrBookNotFound are shared with the entity stores so
	// callers can match either source with errors.Is.
	ErrUserNotFound = users.ErrUserNotFound
	ErrBookNotFound = books.ErrBookNotFound

	ErrEntryExists      = errors.New("wishlist entry already exists")
	ErrWishlistNotFound = errors.New("wishlist not found")
)

// Repository handles all wishlist entry database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new wishlists repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// InsertEntry adds bookID to the wishlist for userID. An empty wishlistID
// starts a new wishlist with a generated identifier. The returned entry
// carries the resolved wishlist identifier.
//
// User and book existence are checked in the same transaction as the insert.
// Both are always checked; when both are missing the error matches
// ErrUserNotFound and ErrBookNotFound. A repeated triple fails with
// ErrEntryExists.
func (r *Repository) InsertEntry(ctx context.Context, userID, bookID, wishlistID string) (*entities.WishlistEntry, error) {
	if wishlistID == "" {
		wishlistID = identifier.New()
	}

	entry := &entities.WishlistEntry{
		WishlistID: wishlistID,
		UserID:     userID,
		BookID:     bookID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userExists, err := users.Exists(tx, userID)
		if err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}
		bookExists, err := books.Exists(tx, bookID)
		if err != nil {
			return fmt.Errorf("failed to check book: %w", err)
		}

		var missing []error
		if !userExists {
			missing = append(missing, ErrUserNotFound)
		}
		if !bookExists {
			missing = append(missing, ErrBookNotFound)
		}
		if len(missing) > 0 {
			return errors.Join(missing...)
		}

		if err := tx.Omit(clause.Associations).Create(entry).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return ErrEntryExists
			}
			return fmt.Errorf("failed to insert wishlist entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// entryRow is one row of the wishlist/book join.
type entryRow struct {
	WishlistID      string
	UserID          string
	BookID          string
	Title           string
	Author          *string
	ISBN            string `gorm:"column:isbn"`
	PublicationDate entities.Date
}

// ListEntries returns the wishlist with every book it contains. Book order is
// stable within one call but otherwise unspecified.
func (r *Repository) ListEntries(ctx context.Context, wishlistID string) (*entities.Wishlist, error) {
	var rows []entryRow
	err := r.db.WithContext(ctx).
		Table("wishlists").
		Select("wishlists.wishlist_id, wishlists.user_id, books.id AS book_id, books.title, books.author, books.isbn, books.publication_date").
		Joins("JOIN books ON books.id = wishlists.book_id").
		Where("wishlists.wishlist_id = ?", wishlistID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist entries: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrWishlistNotFound
	}

	wishlist := &entities.Wishlist{
		WishlistID: rows[0].WishlistID,
		UserID:     rows[0].UserID,
		Books:      make([]entities.Book, 0, len(rows)),
	}
	for _, row := range rows {
		wishlist.Books = append(wishlist.Books, entities.Book{
			ID:              row.BookID,
			Title:           row.Title,
			Author:          row.Author,
			ISBN:            row.ISBN,
			PublicationDate: row.PublicationDate,
		})
	}

	return wishlist, nil
}

// RemoveEntry deletes the entries matching wishlistID and bookID and returns
// how many rows were removed. Removing an entry that does not exist removes
// nothing and is not an error.
//
// The owning user is not checked.
func (r *Repository) RemoveEntry(ctx context.Context, wishlistID, bookID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("wishlist_id = ? AND book_id = ?", wishlistID, bookID).
		Delete(&entities.WishlistEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to remove wishlist entry: %w", result.Error)
	}
	return result.RowsAffected, nil
}
