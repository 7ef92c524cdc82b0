package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_OpenReadRange(t *testing.T) {
	tmpDir := t.TempDir()
	data := []byte("hello world, this is a test blob for crc32c")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "data-001.bin"), data, 0o600))

	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	blob, err := store.Open(ctx, "data-001.bin")
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	rc, err := blob.ReadRange(ctx, 13, 4)
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "this", string(content))

	mapped, ok := blob.(Mappable)
	require.True(t, ok)
	b, err := mapped.Bytes()
	require.NoError(t, err)
	assert.Equal(t, data, b)
}

func TestLocalStore_ReadRange_Boundaries(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "boundary.bin"), []byte("0123456789"), 0o600))

	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	blob, err := store.Open(ctx, "boundary.bin")
	require.NoError(t, err)
	defer blob.Close()

	r, err := blob.ReadRange(ctx, 0, 10)
	require.NoError(t, err)
	content, _ := io.ReadAll(r)
	assert.Equal(t, "0123456789", string(content))

	// Past the end is clipped.
	r, err = blob.ReadRange(ctx, 8, 5)
	require.NoError(t, err)
	content, err = io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "89", string(content))

	_, err = blob.ReadRange(ctx, 20, 5)
	assert.ErrorIs(t, err, io.EOF)
}

func TestLocalStore_List(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "objs", "sub"), 0o755))
	for _, name := range []string{"objs/a.bin", "objs/sub/b.bin", "other.bin"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, filepath.FromSlash(name)), []byte(name), 0o600))
	}

	store := NewLocalStore(tmpDir)
	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"objs/a.bin", "objs/sub/b.bin", "other.bin"}, names)

	names, err = store.List(context.Background(), "objs/")
	require.NoError(t, err)
	assert.Equal(t, []string{"objs/a.bin", "objs/sub/b.bin"}, names)
}

func TestLocalStore_NotFound(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	_, err := store.Open(context.Background(), "missing.bin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "empty"), nil, 0o600))

	store := NewLocalStore(tmpDir)
	ctx := context.Background()
	blob, err := store.Open(ctx, "empty")
	require.NoError(t, err)
	defer blob.Close()

	rc, err := NewReader(ctx, blob)
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Empty(t, content)
}
