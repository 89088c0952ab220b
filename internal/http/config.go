package http

import (
	"github.com/mrlokans/wishlist/internal/database"
)

// RouterConfig contains all dependencies needed to create the HTTP router.
type RouterConfig struct {
	Database        *database.Database
	WishlistService WishlistService

	// Application info
	Version string
}
