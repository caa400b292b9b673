package services

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var imageNamePattern = regexp.MustCompile(`^clinic-[0-9a-f-]{36}-\d+\.jpeg$`)

func TestImageFileNameFormat(t *testing.T) {
	name := imageFileName("clinic")
	assert.Regexp(t, imageNamePattern, name)

	// Two calls must not collide.
	assert.NotEqual(t, name, imageFileName("clinic"))
}

func uploadHeader(t *testing.T, fieldName string, img image.Image) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(fieldName, "upload.png")
	require.NoError(t, err)
	require.NoError(t, png.Encode(part, img))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	files := req.MultipartForm.File[fieldName]
	require.Len(t, files, 1)
	return files[0]
}

func TestImageStoreSaveResizesTo400(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	src := image.NewRGBA(image.Rect(0, 0, 800, 600))
	for y := 0; y < 600; y++ {
		for x := 0; x < 800; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	name, err := store.Save("clinic", uploadHeader(t, "image", src))
	require.NoError(t, err)
	assert.Regexp(t, imageNamePattern, name)

	f, err := os.Open(filepath.Join(store.dir, name))
	require.NoError(t, err)
	defer f.Close()

	saved, err := jpeg.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 400, saved.Bounds().Dx())
	assert.Equal(t, 400, saved.Bounds().Dy())
}

func TestImageStoreSaveRejectsNonImage(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("this is not an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	header := req.MultipartForm.File["image"][0]

	_, err = store.Save("clinic", header)
	assert.ErrorContains(t, err, "could not decode uploaded image")
}
