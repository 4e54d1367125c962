package diff

import (
	"fmt"
	"strings"
)

// Stencil identifies a finite-difference convention.
type Stencil int

const (
	// Forward combines a point with the two points after it.
	Forward Stencil = iota

	// Central combines a point with its immediate neighbours on both sides.
	Central
)

var stencilNames = [...]string{
	Forward: "forward",
	Central: "central",
}

// Valid reports whether s is a recognized stencil.
func (s Stencil) Valid() bool {
	return s >= Forward && s <= Central
}

func (s Stencil) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stencil(%d)", int(s))
	}
	return stencilNames[s]
}

// ParseStencil returns the stencil with the given name ("forward" or
// "central", case-insensitive).
func ParseStencil(name string) (Stencil, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range stencilNames {
		if n == key {
			return Stencil(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedStencil, name)
}
