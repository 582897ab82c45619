package filestore

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMultipartHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func TestNewCreatesDirectories(t *testing.T) {
	base := t.TempDir()

	_, err := New(base)
	require.NoError(t, err)

	for _, dir := range []string{ReceiptDir, YoutubeDir} {
		info, err := os.Stat(filepath.Join(base, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSaveImage(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name        string
		filename    string
		content     []byte
		expectError bool
	}{
		{
			name:     "Valid PNG",
			filename: "receipt.png",
			content:  []byte("png-bytes"),
		},
		{
			name:     "Valid JPEG",
			filename: "screenshot.JPG",
			content:  []byte("jpg-bytes"),
		},
		{
			name:        "Disallowed Extension",
			filename:    "payload.exe",
			content:     []byte("nope"),
			expectError: true,
		},
		{
			name:        "No Extension",
			filename:    "receipt",
			content:     []byte("nope"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := newMultipartHeader(t, tt.filename, tt.content)

			relPath, err := store.SaveImage(ReceiptDir, header)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			data, err := os.ReadFile(filepath.Join(store.BaseDir(), relPath))
			require.NoError(t, err)
			assert.Equal(t, tt.content, data)
		})
	}
}
