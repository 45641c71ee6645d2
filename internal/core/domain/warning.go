package domain

import "fmt"

// Warning reports a recoverable problem met while mapping dependencies,
// typically a quoted include that no searched directory contains. Warnings
// are collected and returned alongside the map instead of printed, so the
// output destination stays under the caller's control.
type Warning struct {
	// Unit is the identifier of the unit being mapped.
	Unit string
	// Include is the include target as written in the file.
	Include string
	// SearchedDirs lists every directory tried, in search order.
	SearchedDirs []string
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	return fmt.Sprintf("%s: include %q not found in %v", w.Unit, w.Include, w.SearchedDirs)
}
