package services

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	imageSize    = 400
	jpegQuality  = 90
	imagesSubdir = "images"
)

// ImageStore resizes uploads to 400x400 JPEGs and stores them under the
// assets directory, where they are served from /static.
type ImageStore struct {
	dir string
}

func NewImageStore(assetsDir string) (*ImageStore, error) {
	dir := filepath.Join(assetsDir, imagesSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create image directory: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Save stores the uploaded image and returns the generated file name.
func (s *ImageStore) Save(entity string, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("could not open uploaded image: %w", err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("could not decode uploaded image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	name := imageFileName(entity)
	out, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("could not store image: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("could not encode image: %w", err)
	}
	return name, nil
}

func imageFileName(entity string) string {
	return fmt.Sprintf("%s-%s-%d.jpeg", entity, uuid.NewString(), time.Now().UnixMilli())
}
