package feature

import "strings"

// Visibility is a feature's declared visibility, taken from the
// "visibility" qualifier on the symbolic-name header.
type Visibility int

// Visibility values in sort order: more visible features sort first.
// VisibilityUnknown is the default for an absent or unrecognized
// qualifier value.
const (
	VisibilityPublic Visibility = iota
	VisibilityProtected
	VisibilityPrivate
	VisibilityUnknown
)

// ParseVisibility parses a qualifier value, case-insensitively.
// Unrecognized or empty values map to VisibilityUnknown; an odd
// qualifier is a recovery case, not an error.
func ParseVisibility(s string) Visibility {
	switch strings.ToUpper(s) {
	case "PUBLIC":
		return VisibilityPublic
	case "PROTECTED":
		return VisibilityProtected
	case "PRIVATE":
		return VisibilityPrivate
	}
	return VisibilityUnknown
}

// String returns the visibility name in upper case.
func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "PUBLIC"
	case VisibilityProtected:
		return "PROTECTED"
	case VisibilityPrivate:
		return "PRIVATE"
	}
	return "UNKNOWN"
}

// Indicator returns the glyph shown before a feature's name in
// display output.
func (v Visibility) Indicator() string {
	switch v {
	case VisibilityPublic:
		return "+"
	case VisibilityProtected:
		return "~"
	case VisibilityPrivate:
		return "-"
	}
	return "?"
}
