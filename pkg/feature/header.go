package feature

import (
	"fmt"
	"strings"

	"github.com/liberty-tools/featex/pkg/manifest"
)

// Header identifies the descriptor headers this package recognizes.
// The set is closed: feature identity is defined by exactly these
// headers, so looking up an out-of-range value is a programming error
// and panics.
type Header int

const (
	// HeaderSymbolicName carries the feature's full name and its
	// visibility qualifier.
	HeaderSymbolicName Header = iota

	// HeaderShortName carries the optional short name.
	HeaderShortName

	// HeaderContent lists the bundles and features this feature
	// provisions.
	HeaderContent

	// HeaderProvisionCapability marks a feature as auto-provisioned.
	HeaderProvisionCapability
)

// Name returns the header name as written in descriptor files.
func (h Header) Name() string {
	switch h {
	case HeaderSymbolicName:
		return "Subsystem-SymbolicName"
	case HeaderShortName:
		return "IBM-ShortName"
	case HeaderContent:
		return "Subsystem-Content"
	case HeaderProvisionCapability:
		return "IBM-Provision-Capability"
	}
	panic(fmt.Sprintf("feature: unregistered header %d", int(h)))
}

// MultiValued reports whether the header's value is parsed as a
// comma-separated clause list. Single-valued headers are only read
// whole or checked for presence.
func (h Header) MultiValued() bool {
	switch h {
	case HeaderSymbolicName, HeaderContent:
		return true
	case HeaderShortName, HeaderProvisionCapability:
		return false
	}
	panic(fmt.Sprintf("feature: unregistered header %d", int(h)))
}

// ParseValues parses the header's clauses from attrs. A header that is
// absent, or present with an empty value, yields no clauses. Grammar
// violations are reported with the header name and raw value.
func (h Header) ParseValues(attrs manifest.Attributes) ([]ValueElement, error) {
	raw, ok := attrs.Get(h.Name())
	if !ok {
		return nil, nil
	}
	elems, err := parseClauses(raw)
	if err != nil {
		return nil, fmt.Errorf("header %s: %w", h.Name(), err)
	}
	return elems, nil
}

// Get returns the header's raw value, trimmed, and whether a non-empty
// value is present.
func (h Header) Get(attrs manifest.Attributes) (string, bool) {
	raw, ok := attrs.Get(h.Name())
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

// IsPresent reports whether the header carries a non-empty value.
func (h Header) IsPresent(attrs manifest.Attributes) bool {
	_, ok := h.Get(attrs)
	return ok
}
