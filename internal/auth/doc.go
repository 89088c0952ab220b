// Package auth handles user password credentials.
//
// Passwords are stored only as salted bcrypt hashes. The work factor comes
// from AUTH_BCRYPT_COST (default 12):
//
//	hash, err := auth.HashPassword(raw, cfg.Auth.BcryptCost)
//	err = auth.CheckPassword(candidate, hash) // auth.ErrInvalidPassword on mismatch
//
// Sessions, tokens and login flows are not part of this service.
package auth
