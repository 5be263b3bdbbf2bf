package feature

import (
	"fmt"
	"slices"
	"strings"

	"github.com/liberty-tools/featex/pkg/manifest"
)

// featureContentType marks a content clause that names another feature
// rather than a bundle or file.
const featureContentType = "osgi.subsystem.feature"

// autoIndicator is the display glyph for auto-provisioned features.
const autoIndicator = "&"

// simpleNamePrefixes are well-known prefixes stripped from full names
// when no short name exists. Checked in order; the first match wins.
var simpleNamePrefixes = []string{
	"com.ibm.websphere.appserver.",
	"com.ibm.websphere.appclient.",
	"io.openliberty.",
}

// Feature is one descriptor's parsed identity. Features are immutable
// after construction; the full name is the sole identity used for
// equality and map keys.
type Feature struct {
	fullName          string
	shortName         string
	name              string
	visibility        Visibility
	containedFeatures []string
	hasContent        bool
	isAutoFeature     bool
}

// New builds a Feature from a descriptor's attributes.
//
// Identity comes from the first symbolic-name clause; a descriptor
// without one fails with ErrMissingIdentity. Every other header is
// optional. Partial construction never escapes: any error yields a
// nil Feature.
func New(attrs manifest.Attributes) (*Feature, error) {
	symbolic, err := HeaderSymbolicName.ParseValues(attrs)
	if err != nil {
		return nil, err
	}
	if len(symbolic) == 0 {
		return nil, fmt.Errorf("header %s: %w", HeaderSymbolicName.Name(), ErrMissingIdentity)
	}
	identity := symbolic[0]

	f := &Feature{
		fullName:   identity.ID,
		visibility: ParseVisibility(identity.Qualifier("visibility")),
	}
	f.shortName, _ = HeaderShortName.Get(attrs)

	f.name = f.fullName
	if f.visibility == VisibilityPublic && f.shortName != "" {
		f.name = f.shortName
	}

	content, err := HeaderContent.ParseValues(attrs)
	if err != nil {
		return nil, err
	}
	for _, elem := range content {
		if elem.Qualifier("type") == featureContentType {
			f.containedFeatures = append(f.containedFeatures, elem.ID)
		}
	}
	f.hasContent = HeaderContent.IsPresent(attrs)
	f.isAutoFeature = HeaderProvisionCapability.IsPresent(attrs)
	return f, nil
}

// Load reads the descriptor at path and builds its Feature.
func Load(path string) (*Feature, error) {
	attrs, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	return New(attrs)
}

// FullName returns the feature's full symbolic name.
func (f *Feature) FullName() string { return f.fullName }

// ShortName returns the declared short name and whether one exists.
func (f *Feature) ShortName() (string, bool) { return f.shortName, f.shortName != "" }

// Visibility returns the feature's visibility.
func (f *Feature) Visibility() Visibility { return f.visibility }

// Name returns the preferred name: the short name for a public feature
// that declares one, otherwise the full name.
func (f *Feature) Name() string { return f.name }

// ContainedFeatures returns the symbolic names of the features this
// feature provisions, in descriptor order.
func (f *Feature) ContainedFeatures() []string { return slices.Clone(f.containedFeatures) }

// HasContent reports whether the descriptor declares any content,
// regardless of content type.
func (f *Feature) HasContent() bool { return f.hasContent }

// IsAutoFeature reports whether the feature is provisioned
// automatically via a provision-capability header.
func (f *Feature) IsAutoFeature() bool { return f.isAutoFeature }

// DisplayName returns the feature's name prefixed with its indicator
// glyph: "&" for auto features, otherwise the visibility glyph.
func (f *Feature) DisplayName() string {
	if f.isAutoFeature {
		return autoIndicator + f.name
	}
	return f.visibility.Indicator() + f.name
}

// SimpleName returns the short name when one exists; otherwise the
// full name with the first matching well-known prefix stripped.
func (f *Feature) SimpleName() string {
	if f.shortName != "" {
		return f.shortName
	}
	for _, prefix := range simpleNamePrefixes {
		if strings.HasPrefix(f.fullName, prefix) {
			return f.fullName[len(prefix):]
		}
	}
	return f.fullName
}

// Compare orders features for display: non-auto before auto, then by
// visibility, then by name. Two features with distinct full names can
// still compare equal here when their visibilities and names coincide;
// identity comparisons must use FullName.
func (f *Feature) Compare(other *Feature) int {
	if f.isAutoFeature != other.isAutoFeature {
		if other.isAutoFeature {
			return -1
		}
		return 1
	}
	if f.visibility != other.visibility {
		if f.visibility < other.visibility {
			return -1
		}
		return 1
	}
	return strings.Compare(f.name, other.name)
}

// Equal reports whether both features describe the same identity.
// Only the full name participates.
func (f *Feature) Equal(other *Feature) bool {
	return other != nil && f.fullName == other.fullName
}

// String returns the full name.
func (f *Feature) String() string { return f.fullName }
