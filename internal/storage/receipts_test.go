package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadFixture(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/v1/receipts", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSaveWritesFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewReceiptStore(dir, "/receipts/")
	require.NoError(t, err)

	url, err := store.Save(uploadFixture(t, "payment.png", "fake image bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/receipts/"))
	assert.True(t, strings.HasSuffix(url, "_payment.png"))

	name := strings.TrimPrefix(url, "/receipts/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestSaveSanitizesFilename(t *testing.T) {
	store, err := NewReceiptStore(t.TempDir(), "/receipts")
	require.NoError(t, err)

	url, err := store.Save(uploadFixture(t, "../../etc passwd!.png", "x"))
	require.NoError(t, err)
	assert.NotContains(t, url, "..")
	assert.NotContains(t, url, " ")
	assert.True(t, strings.HasSuffix(url, "etc_passwd_.png"))
}

func TestSaveRejectsOversizedUpload(t *testing.T) {
	store, err := NewReceiptStore(t.TempDir(), "/receipts")
	require.NoError(t, err)

	fh := uploadFixture(t, "big.png", "x")
	fh.Size = maxReceiptBytes + 1
	_, err = store.Save(fh)
	assert.Error(t, err)
}
