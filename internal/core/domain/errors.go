package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyUnitPair is returned when constructing a UnitPair with neither
	// a source nor a header file.
	ErrEmptyUnitPair = zerr.New("unit pair needs a source or a header")

	// ErrIncludeNotFound is returned when a quoted include cannot be located
	// in any of the searched directories.
	ErrIncludeNotFound = zerr.New("include not found")

	// ErrNoSnapshot is returned when an operation needs a previous scan
	// snapshot and none has been recorded yet.
	ErrNoSnapshot = zerr.New("no scan snapshot recorded")
)
