package domain

// Snapshot is the persisted result of a scan: the dependency map plus a
// content digest per scanned file. Later impact queries diff fresh digests
// against the snapshot to find out which units changed.
type Snapshot struct {
	// Units is the dependency map recorded at scan time.
	Units DependencyMap `json:"units"`

	// Hashes maps each scanned file path to its content digest.
	Hashes map[string]string `json:"hashes"`
}

// ChangedUnits compares the snapshot's digests with freshly computed ones
// and returns the unit identifiers of every file that was modified, added
// or removed since the snapshot was taken.
func (s *Snapshot) ChangedUnits(current map[string]string) Set {
	changed := NewSet()

	for path, digest := range current {
		if old, ok := s.Hashes[path]; !ok || old != digest {
			changed.Add(TrimExtension(path))
		}
	}
	for path := range s.Hashes {
		if _, ok := current[path]; !ok {
			changed.Add(TrimExtension(path))
		}
	}

	return changed
}
