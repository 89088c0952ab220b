package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/wishlist/internal/database/wishlists"
	"github.com/mrlokans/wishlist/internal/http"
	"github.com/mrlokans/wishlist/internal/wishlist"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Store implementations
var _ wishlist.Store = (*wishlists.Repository)(nil)

// =============================================================================
// Service Layer
// =============================================================================

// WishlistService implementations
var _ http.WishlistService = (*wishlist.Service)(nil)
