package domain

import "sort"

// DependencyMap maps a unit identifier to the set of identifiers it depends
// on. Keys are extension-stripped unit names; values may reference other
// keys (project units) or free-standing library names with no entry of
// their own (e.g. "stdio").
type DependencyMap map[string]Set

// Units returns the sorted unit identifiers of the map.
func (m DependencyMap) Units() []string {
	units := make([]string, 0, len(m))
	for unit := range m {
		units = append(units, unit)
	}
	sort.Strings(units)
	return units
}

// keySet returns the unit universe as a Set.
func (m DependencyMap) keySet() Set {
	keys := make(Set, len(m))
	for unit := range m {
		keys[unit] = struct{}{}
	}
	return keys
}

// Impact partitions the map's units into those transitively impacted by the
// given seed identifiers and those untouched by them.
//
// The closure grows monotonically: each pass adds every unit whose
// dependency set intersects the current impacted set, until a fixpoint is
// reached. Seeds outside the unit universe (pure library names) are legal
// and drive propagation, but are intersected away at the end, so the two
// returned sets are disjoint and their union is exactly the map's key set.
func (m DependencyMap) Impact(seeds Set) (impacted, unimpacted Set) {
	impacted = seeds.Clone()

	for previous := -1; len(impacted) > previous; {
		previous = len(impacted)
		for unit, deps := range m {
			if deps.Intersects(impacted) {
				impacted.Add(unit)
			}
		}
	}

	keys := m.keySet()
	for item := range impacted {
		if !keys.Has(item) {
			delete(impacted, item)
		}
	}

	unimpacted = make(Set, len(keys)-len(impacted))
	for unit := range keys {
		if !impacted.Has(unit) {
			unimpacted.Add(unit)
		}
	}
	return impacted, unimpacted
}
