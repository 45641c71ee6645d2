package domain

// Includes holds the include targets extracted from one file, or the merged
// targets of a unit pair. Internal targets come from '#include "..."'
// directives, external targets from '#include <...>'. Targets are kept
// verbatim, subdirectory components included.
type Includes struct {
	Internal Set
	External Set
}

// NewIncludes creates an empty Includes value.
func NewIncludes() Includes {
	return Includes{
		Internal: NewSet(),
		External: NewSet(),
	}
}

// Merge adds every target of other into the receiver. Duplicates collapse
// via set semantics.
func (in Includes) Merge(other Includes) {
	in.Internal.AddAll(other.Internal)
	in.External.AddAll(other.External)
}
