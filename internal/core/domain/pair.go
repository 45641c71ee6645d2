package domain

import "fmt"

// UnitPair identifies one logical compilation unit: a source file associated
// with its header. A pair can also stand for an independent source (e.g.
// "main.c") or an independent header (e.g. macros or templates). At least
// one of the two members is always present.
//
// UnitPair is a comparable value type: equality is structural over
// (Source, Header), so a source-only pair and a full pair sharing a name
// remain distinct, and pairs can be used as map keys.
type UnitPair struct {
	Source string
	Header string
}

// NewUnitPair creates a UnitPair from a source and a header path, either of
// which may be empty. It returns ErrEmptyUnitPair if both are empty; such a
// pair is a contract violation and must never circulate.
func NewUnitPair(source, header string) (UnitPair, error) {
	if source == "" && header == "" {
		return UnitPair{}, ErrEmptyUnitPair
	}
	return UnitPair{Source: source, Header: header}, nil
}

// HasSource reports whether the pair has a source file.
func (p UnitPair) HasSource() bool {
	return p.Source != ""
}

// HasHeader reports whether the pair has a header file.
func (p UnitPair) HasHeader() bool {
	return p.Header != ""
}

// Name returns the pair's unit identifier: its filename without extension.
// The source path wins when both members are present.
func (p UnitPair) Name() string {
	if p.HasSource() {
		return TrimExtension(p.Source)
	}
	return TrimExtension(p.Header)
}

// String implements fmt.Stringer for diagnostics.
func (p UnitPair) String() string {
	return fmt.Sprintf("UnitPair(%q, %q)", p.Source, p.Header)
}
