// Package sec provides the password hashing primitives for the wgpw CLI.
//
// Hashing is delegated to golang.org/x/crypto/bcrypt; this package only
// validates input and classifies the library's errors.
//
// # Components
//
//   - [Hasher]: capability interface for producing and verifying hashes
//   - [Bcrypt], [NewBcrypt]: the bcrypt implementation at a fixed cost
//   - [HashPassword], [ComparePassword]: bcrypt password hashing utilities
//   - [Cost]: reads the work factor embedded in a hash
//
// Generated hashes carry the $2b$ revision tag. Hashes tagged $2a$ or $2y$
// are accepted for comparison.
package sec
