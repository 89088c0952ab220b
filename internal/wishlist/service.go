// Package wishlist validates wishlist requests and turns storage results
// into typed errors the HTTP layer can map to responses.
package wishlist

import (
	"context"
	"errors"

	"github.com/mrlokans/wishlist/internal/database/wishlists"
	"github.com/mrlokans/wishlist/internal/entities"
)

// Store is the storage the service needs.
type Store interface {
	InsertEntry(ctx context.Context, userID, bookID, wishlistID string) (*entities.WishlistEntry, error)
	ListEntries(ctx context.Context, wishlistID string) (*entities.Wishlist, error)
	RemoveEntry(ctx context.Context, wishlistID, bookID string) (int64, error)
}

type Options struct {
	// StrictRemove reports removal of a missing entry as KindEntryNotFound.
	StrictRemove bool
}

type Service struct {
	store Store
	opts  Options
}

func NewService(store Store, opts Options) *Service {
	return &Service{store: store, opts: opts}
}

// AddEntry puts a book on a wishlist, starting a new wishlist when
// req.WishlistID is empty.
func (s *Service) AddEntry(ctx context.Context, req AddEntryRequest) (*entities.WishlistEntry, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	entry, err := s.store.InsertEntry(ctx, req.UserID, req.BookID, req.WishlistID)
	if err != nil {
		return nil, translate(err)
	}
	return entry, nil
}

// ListEntries returns the wishlist with all of its books.
func (s *Service) ListEntries(ctx context.Context, wishlistID string) (*entities.Wishlist, error) {
	if err := ValidateWishlistID(wishlistID); err != nil {
		return nil, err
	}

	list, err := s.store.ListEntries(ctx, wishlistID)
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}

// RemoveEntry takes a book off a wishlist. Removing an entry that is not
// there succeeds unless StrictRemove is set.
func (s *Service) RemoveEntry(ctx context.Context, req RemoveEntryRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	removed, err := s.store.RemoveEntry(ctx, req.WishlistID, req.BookID)
	if err != nil {
		return translate(err)
	}
	if removed == 0 && s.opts.StrictRemove {
		return newError(KindEntryNotFound, "wishlist entry not found", nil)
	}
	return nil
}

// translate maps storage errors to service errors. User absence is checked
// before book absence, so a request missing both reports the user.
func translate(err error) error {
	switch {
	case errors.Is(err, wishlists.ErrUserNotFound):
		return newError(KindUserNotFound, "user not found", err)
	case errors.Is(err, wishlists.ErrBookNotFound):
		return newError(KindBookNotFound, "book not found", err)
	case errors.Is(err, wishlists.ErrEntryExists):
		return newError(KindEntryExists, "book is already on this wishlist", err)
	case errors.Is(err, wishlists.ErrWishlistNotFound):
		return newError(KindWishlistNotFound, "wishlist not found", err)
	default:
		return newError(KindInternal, "internal server error", err)
	}
}
