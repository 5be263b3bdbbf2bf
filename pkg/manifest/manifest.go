// Package manifest reads the main attribute section of manifest-style
// descriptor files.
//
// A descriptor is a flat set of "Name: value" lines. A line beginning
// with a single space continues the previous value. The main section
// ends at the first blank line; later sections are not read.
package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformedManifest means a line does not follow the "Name: value" form.
var ErrMalformedManifest = errors.New("malformed manifest line")

// Attributes maps header names to their raw, unparsed values.
// Header names are matched case-as-written.
type Attributes map[string]string

// Get returns the raw value for name and whether the header is present.
func (a Attributes) Get(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

// Read parses the main attribute section from r.
func Read(r io.Reader) (Attributes, error) {
	attrs := make(Attributes)
	scanner := bufio.NewScanner(r)
	var last string
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			break
		}
		if line[0] == ' ' {
			// Continuation of the previous header's value.
			if last == "" {
				return nil, fmt.Errorf("continuation without header: %w", ErrMalformedManifest)
			}
			attrs[last] += line[1:]
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("line %q: %w", line, ErrMalformedManifest)
		}
		attrs[name] = strings.TrimLeft(value, " ")
		last = name
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return attrs, nil
}

// Load reads the main attribute section of the descriptor at path.
// The file is closed before the caller parses any values.
func Load(path string) (Attributes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	attrs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return attrs, nil
}
