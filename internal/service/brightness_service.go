package service

import (
	"io"

	"github.com/sirupsen/logrus"

	"go-image-brightness/internal/loader"
	"go-image-brightness/internal/logger"
	"go-image-brightness/internal/presenter"
	"go-image-brightness/pkg/brightness"
)

// BrightnessService runs the load -> calculate -> print pipeline for one
// image file per invocation.
type BrightnessService struct {
	loader loader.ImageLoader
}

// NewBrightnessService creates the pipeline service
func NewBrightnessService(l loader.ImageLoader) *BrightnessService {
	return &BrightnessService{loader: l}
}

// Run loads the image at path, computes its brightness and writes the
// formatted scalar to out. The lights-on classification is logged at
// debug level but never printed; callers that want the boolean should
// call brightness.LightsOn themselves.
func (s *BrightnessService) Run(path string, out io.Writer) error {
	img, err := s.loader.Load(path)
	if err != nil {
		return err
	}

	b := brightness.Calculate(img)

	bounds := img.Bounds()
	logger.WithFields(logrus.Fields{
		"path":       path,
		"width":      bounds.Dx(),
		"height":     bounds.Dy(),
		"brightness": b,
		"lights_on":  brightness.LightsOn(b),
	}).Debug("calculated image brightness")

	return presenter.Print(out, b)
}
