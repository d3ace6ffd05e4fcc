// Package errs holds the error kinds and the fixed message catalog that
// every repository operation reports contract violations from.
package errs

// Kind classifies a contract violation. A Kind is itself an error so callers
// can test for a whole class with errors.Is(err, errs.NotFound).
type Kind int

const (
	Usage Kind = iota + 1
	NotInitialized
	NotFound
	AlreadyExists
	IllegalState
)

func (k Kind) String() string {
	switch k {
	case Usage:
		return "usage error"
	case NotInitialized:
		return "not initialized"
	case NotFound:
		return "not found"
	case AlreadyExists:
		return "already exists"
	case IllegalState:
		return "illegal state"
	default:
		return "unknown"
	}
}

func (k Kind) Error() string { return k.String() }

// Error is a catalog entry: a kind plus the exact message shown to the user.
type Error struct {
	Kind Kind
	Msg  string
}

// New creates a catalog entry.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func (e *Error) Error() string { return e.Msg }

// Is matches either the same catalog entry or its Kind.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind && e.Msg == t.Msg
	}
	return false
}
