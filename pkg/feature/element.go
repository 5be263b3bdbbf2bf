package feature

import (
	"fmt"
	"strings"
)

// ValueElement is one clause of a multi-valued header: an identifier
// plus zero or more name=value qualifiers.
type ValueElement struct {
	// ID is the clause's primary token, never empty.
	ID string

	qualifiers map[string]string
}

// Qualifier returns the named qualifier's value, or "" when the clause
// does not carry it.
func (v ValueElement) Qualifier(name string) string {
	return v.qualifiers[name]
}

// HasQualifier reports whether the clause carries the named qualifier.
func (v ValueElement) HasQualifier(name string) bool {
	_, ok := v.qualifiers[name]
	return ok
}

// Qualifiers returns a copy of the clause's qualifier mapping. The
// mapping is never nil, even for a clause with no qualifiers.
func (v ValueElement) Qualifiers() map[string]string {
	out := make(map[string]string, len(v.qualifiers))
	for k, val := range v.qualifiers {
		out[k] = val
	}
	return out
}

// parseClauses splits a raw header value into its ordered clauses.
// An empty value yields no clauses. Commas and semicolons inside
// quoted qualifier values do not delimit.
func parseClauses(raw string) ([]ValueElement, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts, err := splitOutsideQuotes(raw, ',')
	if err != nil {
		return nil, err
	}
	elems := make([]ValueElement, 0, len(parts))
	for _, part := range parts {
		elem, err := parseClause(part)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	return elems, nil
}

// parseClause parses one comma-delimited clause. The first segment is
// the id; later segments carrying name=value, name:=value, or
// name="value" contribute qualifiers. Segments with no "=" after the
// id are unnamed markers and are skipped. Within a clause, the last
// occurrence of a duplicate qualifier name wins.
func parseClause(s string) (ValueElement, error) {
	segs, err := splitOutsideQuotes(s, ';')
	if err != nil {
		return ValueElement{}, err
	}
	id := strings.TrimSpace(segs[0])
	if id == "" || strings.Contains(id, "=") {
		return ValueElement{}, fmt.Errorf("clause %q: missing id: %w", strings.TrimSpace(s), ErrMalformedHeader)
	}
	quals := make(map[string]string)
	for _, seg := range segs[1:] {
		name, value, ok := cutQualifier(seg)
		if !ok {
			continue
		}
		quals[name] = value
	}
	return ValueElement{ID: id, qualifiers: quals}, nil
}

// cutQualifier splits a clause segment into a qualifier name and
// value. Both the directive form (name:=value) and the attribute form
// (name=value) are accepted; a quoted value is unwrapped with its
// interior preserved verbatim.
func cutQualifier(seg string) (name, value string, ok bool) {
	i := strings.IndexByte(seg, '=')
	if i < 0 {
		return "", "", false
	}
	name = seg[:i]
	name = strings.TrimSuffix(name, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", false
	}
	value = strings.TrimSpace(seg[i+1:])
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return name, value, true
}

// splitOutsideQuotes splits s on sep, ignoring separators inside
// double quotes. An unterminated quote is a grammar violation.
func splitOutsideQuotes(s string, sep byte) ([]string, error) {
	var parts []string
	start := 0
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuote = !inQuote
		case sep:
			if !inQuote {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in %q: %w", s, ErrMalformedHeader)
	}
	return append(parts, s[start:]), nil
}
