package command

import "fmt"

// Invocation is the resolved intent of a command line: one of [Generate],
// [Compare] or [InvalidUsage].
type Invocation interface{ invocation() }

// Generate hashes Password with a fresh salt.
type Generate struct {
	Password []byte
}

// Compare checks Password against an encoded Hash.
type Compare struct {
	Password []byte
	Hash     []byte
}

// InvalidUsage is a command line with the wrong number of positional arguments.
type InvalidUsage struct {
	Got       int
	FromStdin bool
}

func (Generate) invocation()     {}
func (Compare) invocation()      {}
func (InvalidUsage) invocation() {}

// Err converts the invocation into a [UsageError].
func (u InvalidUsage) Err() UsageError {
	want := "1 or 2"
	if u.FromStdin {
		want = "0 or 1"
	}
	return UsageError{Reason: fmt.Sprintf("expected %s arguments, got %d", want, u.Got)}
}

// Parse resolves positional arguments into an [Invocation] without side
// effects. When passwordFromStdin is set, args only carry the optional hash and
// the returned invocation has no password; see [withPassword].
func Parse(args []string, passwordFromStdin bool) Invocation {
	if passwordFromStdin {
		switch len(args) {
		case 0:
			return Generate{}
		case 1:
			return Compare{Hash: []byte(args[0])}
		}
		return InvalidUsage{Got: len(args), FromStdin: true}
	}

	switch len(args) {
	case 1:
		return Generate{Password: []byte(args[0])}
	case 2:
		return Compare{Password: []byte(args[0]), Hash: []byte(args[1])}
	default:
		return InvalidUsage{Got: len(args)}
	}
}

func withPassword(inv Invocation, password []byte) Invocation {
	switch inv := inv.(type) {
	case Generate:
		inv.Password = password
		return inv
	case Compare:
		inv.Password = password
		return inv
	default:
		return inv
	}
}
