package loader

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go-image-brightness/internal/apperrors"
)

// ImageLoader loads an image from a filesystem path.
type ImageLoader interface {
	Load(path string) (image.Image, error)
}

// FileLoader implements ImageLoader against the local filesystem. It
// accepts any format registered with the image package; PNG, JPEG, GIF,
// BMP, TIFF and WebP decoders are registered by this package's imports.
type FileLoader struct{}

// NewFileLoader creates a filesystem image loader
func NewFileLoader() ImageLoader {
	return &FileLoader{}
}

// Load opens and decodes the image at path. Every failure — missing
// file, unreadable file, unsupported or corrupt format, or a decode that
// yields no pixels — returns a load error carrying the path. There is no
// fallback image.
func (l *FileLoader) Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewLoadError(path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, apperrors.NewLoadError(path, errors.Wrap(err, "decode failed"))
	}

	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, apperrors.NewLoadError(path, errors.Errorf("%s decode produced an empty image", format))
	}

	return img, nil
}
