package feature

import "errors"

// Descriptor errors.
var (
	// ErrMissingIdentity means the symbolic-name header is absent or
	// yields no clauses. The descriptor cannot identify a feature.
	ErrMissingIdentity = errors.New("descriptor has no symbolic name")

	// ErrMalformedHeader means a header value violates the clause
	// grammar: a clause with an empty id, or an unterminated quote.
	ErrMalformedHeader = errors.New("malformed header value")

	// ErrInvalidPattern means a Matches pattern uses an unrecognized
	// syntax tag or an invalid glob or regex expression.
	ErrInvalidPattern = errors.New("invalid match pattern")
)
