package ports

// Hasher defines the interface for computing file content digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile returns the content digest of a single file.
	HashFile(path string) (string, error)

	// HashFiles returns the content digest of every given file, keyed by
	// path.
	HashFiles(paths []string) (map[string]string, error)
}
