package filestorage

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:5000/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := store.SaveFileWithPath(ctx, fileHeader(t, "avatar", pngPixel), "stories")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:5000/uploads/stories/"))
	assert.True(t, strings.HasSuffix(url, ".png"), "extension comes from the sniffed type")

	stored := filepath.Join(dir, "stories", filepath.Base(url))
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, pngPixel, content)

	require.NoError(t, store.DeleteFile(ctx, url))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	// Deleting again or deleting a foreign URL is a no-op
	assert.NoError(t, store.DeleteFile(ctx, url))
	assert.NoError(t, store.DeleteFile(ctx, "https://cdn.example.com/a.png"))
}

func TestLocalStorage_Owns(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:5000/uploads")
	require.NoError(t, err)

	assert.True(t, store.Owns("http://localhost:5000/uploads/posts/a.png"))
	assert.False(t, store.Owns("http://localhost:5000/uploads/"))
	assert.False(t, store.Owns("http://localhost:5000/uploadsx/a.png"))
	assert.False(t, store.Owns("https://cdn.example.com/a.png"))
	assert.False(t, store.Owns(""))
}

func TestLocalStorage_DeleteStaysInsideBase(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(filepath.Dir(dir), "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o600))
	t.Cleanup(func() { _ = os.Remove(outside) })

	store, err := NewLocalStorage(dir, "http://h/uploads")
	require.NoError(t, err)

	require.NoError(t, store.DeleteFile(context.Background(), "http://h/uploads/../keep.txt"))
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}

func TestDetectImage(t *testing.T) {
	mtype, err := DetectImage(fileHeader(t, "a.png", pngPixel))
	require.NoError(t, err)
	assert.Equal(t, "image/png", mtype.String())

	_, err = DetectImage(fileHeader(t, "evil.png", []byte("#!/bin/sh\necho hi\n")))
	assert.ErrorIs(t, err, ErrNotAnImage)
}
