// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres), migrations
//	├── errors.go        # Driver-independent constraint error classification
//	├── users/           # User creation and password verification
//	├── books/           # Book catalogue
//	└── wishlists/       # Wishlist entries linking users to books
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.Open(cfg.Database)
//
//	usersRepo := users.NewRepository(db.DB, cfg.Auth.BcryptCost)
//	wishlistsRepo := wishlists.NewRepository(db.DB)
//
//	entry, err := wishlistsRepo.InsertEntry(ctx, userID, bookID, "")
//
// # Interface Implementations
//
//   - wishlists.Repository: implements wishlist.Store
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Register its models in database.go so Migrate creates the tables
//  5. Add compile-time interface check in internal/interfaces
package database
