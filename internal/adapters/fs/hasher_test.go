package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarhses/cdeps/internal/adapters/fs"
)

func TestHasher_HashFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.c", "int main() { return 0; }\n")

	hasher := fs.NewHasher()
	first, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.Len(t, first, 16)

	second, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second, "digest must be stable for identical content")

	changed := writeFile(t, dir, "a.c", "int main() { return 1; }\n")
	third, err := hasher.HashFile(changed)
	require.NoError(t, err)
	assert.NotEqual(t, first, third, "digest must change with the content")
}

func TestHasher_HashFile_Missing(t *testing.T) {
	hasher := fs.NewHasher()
	_, err := hasher.HashFile("does/not/exist.c")
	assert.Error(t, err)
}

func TestHasher_HashFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.c", "a")
	b := writeFile(t, dir, "b.c", "b")

	hasher := fs.NewHasher()
	digests, err := hasher.HashFiles([]string{a, b})

	require.NoError(t, err)
	require.Len(t, digests, 2)
	assert.NotEqual(t, digests[a], digests[b])
}
