package errext

import "errors"

// HasHint is an error with an attached human-readable hint, e.g. how to get a
// missing tool onto the PATH. Hints are logged as a separate field next to
// the error message, see Format.
type HasHint interface {
	error
	Hint() string
}

// WithHint attaches a hint to the given error. A nil error stays nil. When an
// error in the chain already carries a hint, the hints combine as
// "new hint (old hint)", so the outermost layer leads.
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return withHint{err, hint}
}

type withHint struct {
	error
	hint string
}

func (wh withHint) Unwrap() error {
	return wh.error
}

func (wh withHint) Hint() string {
	hint := wh.hint
	var oldhint HasHint
	if errors.As(wh.error, &oldhint) {
		hint = hint + " (" + oldhint.Hint() + ")"
	}

	return hint
}

var _ HasHint = withHint{}
