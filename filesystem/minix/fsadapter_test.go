package minix

import (
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFSOpenRegularFile(t *testing.T) {
	ctx := buildTree(t)
	fsys := NewFS(ctx)

	f, err := fsys.Open("sub/hello.txt")
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	info, err := f.Stat()
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.EqualValues(t, 5, info.Size())
}

func TestFSReadDir(t *testing.T) {
	ctx := buildTree(t)
	fsys := NewFS(ctx)

	entries, err := fs.ReadDir(fsys, "sub")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "hello.txt", entries[0].Name())
}

func TestFSWalkDir(t *testing.T) {
	ctx := buildTree(t)
	fsys := NewFS(ctx)

	var found []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		found = append(found, path)
		return nil
	})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{".", "sub", "sub/hello.txt"}, found)
}

func TestFSOpenMissing(t *testing.T) {
	ctx := buildTree(t)
	fsys := NewFS(ctx)

	_, err := fsys.Open("nope")
	require.Error(t, err)
}
