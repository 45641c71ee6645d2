package domain

// Pair matches sources with headers and returns the resulting set of unit
// pairs. Matching is by filename without extension, against the full
// candidate path, directory included; no filesystem access happens here,
// callers supply candidates already known to exist.
//
// Sources pick up their highest-priority header counterpart if one exists.
// Headers are emitted on their own only when no source shares their stripped
// name; a header that loses the extension tie-break to a sibling is dropped.
func Pair(sources, headers Set) map[UnitPair]struct{} {
	pairs := make(map[UnitPair]struct{}, len(sources)+len(headers))

	for source := range sources {
		header, _ := findCounterpart(source, headers, HeaderExtensions)
		pairs[UnitPair{Source: source, Header: header}] = struct{}{}
	}

	for header := range headers {
		if _, ok := findCounterpart(header, sources, SourceExtensions); !ok {
			pairs[UnitPair{Header: header}] = struct{}{}
		}
	}

	return pairs
}

// findCounterpart looks for another filename with the same extension-stripped
// name among candidates, trying each extension in priority order. The first
// existing candidate wins; extension order is the tie-break, not
// alphabetical order.
func findCounterpart(path string, candidates Set, extensions []string) (string, bool) {
	name := TrimExtension(path)
	for _, ext := range extensions {
		if candidate := name + ext; candidates.Has(candidate) {
			return candidate, true
		}
	}
	return "", false
}
