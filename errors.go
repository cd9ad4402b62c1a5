package katsuyo

import (
	"errors"
	"fmt"
)

// ErrMalformedEnding is matched by every *MalformedEndingError and wraps
// the validation errors returned by NewVerb and ParseVerbLine.
var ErrMalformedEnding = errors.New("malformed verb ending")

// MalformedEndingError reports a verb whose final kana does not fit its
// class. The conjugation functions panic with it: a well-formed Verb never
// produces one, so seeing it means the verb data itself is corrupt.
type MalformedEndingError struct {
	// Verb is the verb text being conjugated (possibly a derived potential verb).
	Verb string
	// Class is the class the verb was conjugated as.
	Class VerbClass
	// Ending is the offending final kana.
	Ending string
	// Table names the lookup that rejected the ending.
	Table string
}

func (e *MalformedEndingError) Error() string {
	return fmt.Sprintf("katsuyo: %s verb %q: ending %q not in %s table", e.Class, e.Verb, e.Ending, e.Table)
}

// Is makes errors.Is(err, ErrMalformedEnding) true.
func (e *MalformedEndingError) Is(target error) bool {
	return target == ErrMalformedEnding
}
