// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - wishlist.Store: Wishlist entry storage (internal/wishlist/service.go),
//     implemented by wishlists.Repository
//
// ## Service Interfaces
//
//   - http.WishlistService: What the HTTP layer needs from the wishlist
//     service (internal/http/stores.go), implemented by wishlist.Service
//
// # Adding a New Endpoint
//
//  1. Add the request struct with validate tags to internal/wishlist/requests.go
//  2. Add the operation to wishlist.Service and, if it touches storage, to wishlist.Store
//  3. Extend http.WishlistService and register the handler in internal/http/router.go
//  4. Add a compile-time check in checks.go if a new interface was introduced
package interfaces
