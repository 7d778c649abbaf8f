package client

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDetectFileType(t *testing.T) {
	assert.Equal(t, FileTypePDF, DetectFileType([]byte("%PDF-1.4 rest of file")))
	assert.Equal(t, FileTypeJPEG, DetectFileType([]byte{0xff, 0xd8, 0xff, 0xe0}))
	assert.Equal(t, FileTypePNG, DetectFileType([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}))
	assert.Equal(t, FileTypeUnknown, DetectFileType([]byte("hello")))
	assert.Equal(t, FileTypeUnknown, DetectFileType(nil))
}

func TestDownloadFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.4 fake bill"))
	}))
	defer server.Close()

	dc := NewDownloadClient(5*time.Second, 1<<20)
	data, err := dc.Download(server.URL)

	assert.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake bill"), data)
}

func TestDownloadHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	dc := NewDownloadClient(5*time.Second, 1<<20)
	_, err := dc.Download(server.URL)

	assert.Error(t, err)
}

func TestDownloadRejectsOversizedDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, 2048))
	}))
	defer server.Close()

	dc := NewDownloadClient(5*time.Second, 1024)
	_, err := dc.Download(server.URL)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "maximum size")
}

func TestDownloadBase64DataURL(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02}
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(payload)

	dc := NewDownloadClient(5*time.Second, 1<<20)
	data, err := dc.Download(dataURL)

	assert.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, FileTypeJPEG, DetectFileType(data))
}
