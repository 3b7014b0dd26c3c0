package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_StoreAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/uploads")

	url, err := store.Store([]byte("fake-png"), "receipt.PNG", PaymentProofPolicy)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	rel := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, rel))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png"), data)

	require.NoError(t, store.Delete(url))
	_, err = os.Stat(filepath.Join(dir, rel))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_ProfilePhotoSubdir(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/uploads")

	url, err := store.Store([]byte("fake-jpg"), "me.jpg", ProfilePhotoPolicy)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/profile_photos/"))

	rel := strings.TrimPrefix(url, "/uploads/")
	_, err = os.Stat(filepath.Join(dir, rel))
	assert.NoError(t, err)
}

func TestLocalStore_RejectsDisallowedExtension(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/uploads")

	_, err := store.Store([]byte("#!/bin/sh"), "script.sh", PaymentProofPolicy)
	assert.ErrorIs(t, err, ErrInvalidExtension)

	_, err = store.Store([]byte("fake-pdf"), "receipt.pdf", ProfilePhotoPolicy)
	assert.ErrorIs(t, err, ErrInvalidExtension)
}

func TestLocalStore_RejectsOversizedFile(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/uploads")

	big := make([]byte, maxUploadBytes+1)
	_, err := store.Store(big, "huge.jpg", ProfilePhotoPolicy)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestLocalStore_RejectsEmptyFile(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/uploads")

	_, err := store.Store(nil, "empty.jpg", ProfilePhotoPolicy)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestLocalStore_DeleteRejectsForeignURL(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/uploads")

	assert.ErrorIs(t, store.Delete("/etc/passwd"), ErrUnknownURL)
	assert.ErrorIs(t, store.Delete("/uploads/../../etc/passwd"), ErrUnknownURL)
}

func TestLocalStore_DeleteMissingFileIsNoop(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/uploads")

	assert.NoError(t, store.Delete("/uploads/never-stored.png"))
}
