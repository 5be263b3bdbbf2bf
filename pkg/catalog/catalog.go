// Package catalog discovers feature descriptors under an install's
// feature directory and answers identity queries over them.
//
// A catalog is built once from a directory walk and is immutable
// afterwards. Descriptors that cannot be read or parsed are logged
// and skipped; they contribute no Feature but do not fail the walk.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/liberty-tools/featex/pkg/feature"
)

// descriptorExt is the file extension of feature descriptors.
const descriptorExt = ".mf"

// ErrUnknownFeature means a lookup name resolved to no feature.
var ErrUnknownFeature = errors.New("unknown feature")

// Catalog indexes the features of one install by full and short name.
type Catalog struct {
	features    []*feature.Feature
	byFullName  map[string]*feature.Feature
	byShortName map[string]*feature.Feature
}

// Load walks root for *.mf descriptors and builds a catalog. A nil
// logger disables logging. Unreadable or malformed descriptors are
// logged and skipped; only a failure to walk root itself is an error.
func Load(root string, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Catalog{
		byFullName:  make(map[string]*feature.Feature),
		byShortName: make(map[string]*feature.Feature),
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), descriptorExt) {
			return nil
		}
		f, err := feature.Load(path)
		if err != nil {
			logger.Warn("skipping descriptor", "path", path, "error", err)
			return nil
		}
		c.add(f, logger)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	logger.Info("catalog loaded", "root", root, "features", len(c.features))
	return c, nil
}

// add indexes one feature. The first descriptor declaring a full name
// wins; later duplicates are logged and dropped.
func (c *Catalog) add(f *feature.Feature, logger *slog.Logger) {
	key := strings.ToLower(f.FullName())
	if _, dup := c.byFullName[key]; dup {
		logger.Warn("duplicate feature descriptor", "fullName", f.FullName())
		return
	}
	c.byFullName[key] = f
	if short, ok := f.ShortName(); ok {
		c.byShortName[strings.ToLower(short)] = f
	}
	c.features = append(c.features, f)
}

// Size returns the number of indexed features.
func (c *Catalog) Size() int { return len(c.features) }

// List returns all features in display order.
func (c *Catalog) List() []*feature.Feature {
	out := slices.Clone(c.features)
	slices.SortFunc(out, func(a, b *feature.Feature) int { return a.Compare(b) })
	return out
}

// Lookup resolves a name to a feature, case-insensitively. Short
// names are tried before full names.
func (c *Catalog) Lookup(name string) (*feature.Feature, bool) {
	key := strings.ToLower(name)
	if f, ok := c.byShortName[key]; ok {
		return f, true
	}
	f, ok := c.byFullName[key]
	return f, ok
}

// Find returns all features matching pattern, in display order.
func (c *Catalog) Find(pattern string) ([]*feature.Feature, error) {
	var out []*feature.Feature
	for _, f := range c.features {
		ok, err := f.Matches(pattern)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, f)
		}
	}
	slices.SortFunc(out, func(a, b *feature.Feature) int { return a.Compare(b) })
	return out, nil
}

// Dependencies resolves f's directly contained features. Contained
// names with no descriptor in the catalog are returned in missing.
func (c *Catalog) Dependencies(f *feature.Feature) (deps []*feature.Feature, missing []string) {
	for _, name := range f.ContainedFeatures() {
		if dep, ok := c.byFullName[strings.ToLower(name)]; ok {
			deps = append(deps, dep)
		} else {
			missing = append(missing, name)
		}
	}
	return deps, missing
}

// TransitiveDependencies resolves f's dependency closure in
// breadth-first discovery order, excluding f itself. Cycles are
// visited once.
func (c *Catalog) TransitiveDependencies(f *feature.Feature) (deps []*feature.Feature, missing []string) {
	seen := map[string]bool{strings.ToLower(f.FullName()): true}
	missingSeen := make(map[string]bool)
	queue := []*feature.Feature{f}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		direct, miss := c.Dependencies(next)
		for _, m := range miss {
			if !missingSeen[m] {
				missingSeen[m] = true
				missing = append(missing, m)
			}
		}
		for _, dep := range direct {
			key := strings.ToLower(dep.FullName())
			if seen[key] {
				continue
			}
			seen[key] = true
			deps = append(deps, dep)
			queue = append(queue, dep)
		}
	}
	return deps, missing
}

// Resolve looks up name and fails with ErrUnknownFeature when no
// feature carries it as a short or full name.
func (c *Catalog) Resolve(name string) (*feature.Feature, error) {
	if f, ok := c.Lookup(name); ok {
		return f, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownFeature)
}

// DefaultRoot returns the conventional feature directory under a
// Liberty install root.
func DefaultRoot(installDir string) string {
	return filepath.Join(installDir, "lib", "features")
}

// ValidRoot reports whether path exists and is a directory.
func ValidRoot(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
