// Package plugin catalogues the engine plugins a site may enable and locates them
// on the plugin search paths. Plugins themselves are executed by the engine, not here.
package plugin

import (
	"fmt"
	"strings"
)

// Descriptor describes a known engine plugin.
type Descriptor struct {
	// Name is the dotted identifier used in the site's plugin list (e.g. "liquid_tags.img").
	Name        string
	Kind        Kind
	Description string
}

// Package returns the top-level package that provides the plugin.
func (d Descriptor) Package() string {
	return PackageOf(d.Name)
}

// String returns a human-readable representation of the descriptor.
func (d Descriptor) String() string {
	return fmt.Sprintf("%s (%s)", d.Name, d.Kind)
}

// Validate checks if the descriptor is valid.
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("plugin name is required")
	}
	if !d.Kind.IsValid() {
		return fmt.Errorf("invalid plugin kind: %s", d.Kind)
	}
	return nil
}

// PackageOf returns the part of a dotted plugin identifier before the first dot.
func PackageOf(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}
