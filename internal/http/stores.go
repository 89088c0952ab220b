package http

import (
	"context"

	"github.com/mrlokans/wishlist/internal/entities"
	"github.com/mrlokans/wishlist/internal/wishlist"
)

// WishlistService is what WishlistController needs from the service layer.
type WishlistService interface {
	AddEntry(ctx context.Context, req wishlist.AddEntryRequest) (*entities.WishlistEntry, error)
	ListEntries(ctx context.Context, wishlistID string) (*entities.Wishlist, error)
	RemoveEntry(ctx context.Context, req wishlist.RemoveEntryRequest) error
}
