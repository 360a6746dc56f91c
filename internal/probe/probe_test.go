//go:build !(linux && arm64)

package probe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faketv/internal/library"
)

func TestLibraryProbesEveryVideo(t *testing.T) {
	root := t.TempDir()
	show := filepath.Join(root, "cartoons")
	require.NoError(t, os.Mkdir(show, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(show, "ep1.mp4"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(show, "ep2.mkv"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "tv_static.mp4"), []byte("x"), 0644))

	results, err := Library(library.New(root))
	require.NoError(t, err)

	assert.Len(t, results, 3)
	for _, r := range results {
		assert.NoError(t, r.Err, r.Path)
	}
}

func TestLibraryEmptyRoot(t *testing.T) {
	results, err := Library(library.New(t.TempDir()))
	require.NoError(t, err)
	assert.Empty(t, results)
}
