package sec

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt work factor used when none is specified.
	DefaultCost = 12

	// ErrMalformedHash is returned when a hash is not a valid bcrypt encoding.
	ErrMalformedHash = Error("malformed bcrypt hash")
	// ErrEncoding is returned for passwords that are not valid UTF-8.
	ErrEncoding = Error("password is not valid UTF-8")
	// ErrPasswordTooLong is returned for passwords bcrypt cannot fully consume.
	ErrPasswordTooLong = Error("password exceeds 72 bytes")
	// ErrInvalidCost is returned for a work factor outside of the bcrypt range.
	ErrInvalidCost = Error("invalid bcrypt cost")

	// revision is the minor version tag written into generated hashes.
	revision = 'b'
)

// Error is an error type for password hashing failures.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// Hasher produces and verifies password hashes.
type Hasher interface {
	// Hash derives a new encoded hash for password using a random salt.
	Hash(password []byte) ([]byte, error)
	// Compare reports whether password resolves to hash. A mismatch is not an
	// error; an error means hash could not be interpreted.
	Compare(password, hash []byte) (bool, error)
}

// Bcrypt is a [Hasher] backed by bcrypt at a fixed cost.
type Bcrypt struct {
	cost int
}

var _ Hasher = (*Bcrypt)(nil)

// NewBcrypt returns a bcrypt [Hasher]. It errors if cost is outside of
// [bcrypt.MinCost, bcrypt.MaxCost].
func NewBcrypt(cost int) (*Bcrypt, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Bcrypt{cost: cost}, nil
}

// Cost returns the work factor new hashes are generated with.
func (b *Bcrypt) Cost() int { return b.cost }

// Hash satisfies [Hasher].
func (b *Bcrypt) Hash(password []byte) ([]byte, error) {
	return HashPassword(password, b.cost)
}

// Compare satisfies [Hasher].
func (b *Bcrypt) Compare(password, hash []byte) (bool, error) {
	return ComparePassword(password, hash)
}

// ComparePassword reports whether the provided password resolves to the given
// hash. The cost and salt are taken from hash.
func ComparePassword[T ~string | ~[]byte](password T, hash []byte) (bool, error) {
	if !utf8.Valid([]byte(password)) {
		return false, ErrEncoding
	}
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}

// HashPassword generates the hash for a given password at cost. It errors if
// the password is longer than 72 bytes or is not valid UTF-8.
func HashPassword[T ~string | ~[]byte](password T, cost int) ([]byte, error) {
	if !utf8.Valid([]byte(password)) {
		return nil, ErrEncoding
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	} else if err != nil {
		return nil, err
	}
	// bcrypt emits $2a$, which is identical to $2b$ within the 72 byte limit.
	hash[2] = revision
	return hash, nil
}

// Cost returns the work factor embedded in hash.
func Cost(hash []byte) (int, error) {
	cost, err := bcrypt.Cost(hash)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	return cost, nil
}
