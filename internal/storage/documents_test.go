package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"kud-club-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePDF(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDocumentStore_Path(t *testing.T) {
	root := t.TempDir()
	store, err := storage.NewDocumentStore(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "formulare", "formular_7.pdf"), store.Path(7))
}

func TestDocumentStore_Attach(t *testing.T) {
	root := t.TempDir()
	store, err := storage.NewDocumentStore(root)
	require.NoError(t, err)

	src := writePDF(t, t.TempDir(), "scan.pdf", "%PDF-1.4 original")

	t.Run("CopiesIntoStore", func(t *testing.T) {
		require.NoError(t, store.Attach(7, src, false))
		assert.True(t, store.Exists(7))

		data, err := os.ReadFile(store.Path(7))
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 original", string(data))
	})

	t.Run("ExistingAttachmentBlocksWithoutOverwrite", func(t *testing.T) {
		other := writePDF(t, t.TempDir(), "other.pdf", "%PDF-1.4 replacement")

		err := store.Attach(7, other, false)
		assert.ErrorIs(t, err, storage.ErrAttachmentExists)

		data, _ := os.ReadFile(store.Path(7))
		assert.Equal(t, "%PDF-1.4 original", string(data))
	})

	t.Run("OverwriteReplaces", func(t *testing.T) {
		other := writePDF(t, t.TempDir(), "other.pdf", "%PDF-1.4 replacement")

		require.NoError(t, store.Attach(7, other, true))

		data, _ := os.ReadFile(store.Path(7))
		assert.Equal(t, "%PDF-1.4 replacement", string(data))
	})

	t.Run("RejectsNonPDF", func(t *testing.T) {
		txt := writePDF(t, t.TempDir(), "notes.txt", "plain text")
		assert.Error(t, store.Attach(8, txt, false))
		assert.False(t, store.Exists(8))
	})

	t.Run("RejectsUnsavedForm", func(t *testing.T) {
		assert.Error(t, store.Attach(0, src, false))
		assert.Error(t, store.Attach(-1, src, false))
	})

	t.Run("MissingSourceLeavesNothingBehind", func(t *testing.T) {
		err := store.Attach(9, filepath.Join(t.TempDir(), "missing.pdf"), false)
		assert.Error(t, err)
		assert.False(t, store.Exists(9))
	})
}

func TestDocumentStore_Exists(t *testing.T) {
	store, err := storage.NewDocumentStore(t.TempDir())
	require.NoError(t, err)

	assert.False(t, store.Exists(1))

	src := writePDF(t, t.TempDir(), "scan.pdf", "%PDF-1.4")
	require.NoError(t, store.Attach(1, src, false))
	assert.True(t, store.Exists(1))
}

func TestNewDocumentStore_EmptyRoot(t *testing.T) {
	_, err := storage.NewDocumentStore("   ")
	assert.Error(t, err)
}
