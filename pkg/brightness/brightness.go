// Package brightness reduces an image to a single normalized mean-intensity
// scalar and classifies it against a fixed lights-on threshold. Both
// operations are independent so callers can consume the raw scalar, the
// boolean, or both.
package brightness

import (
	"image"

	"gonum.org/v1/gonum/stat"
)

// LightOnThreshold is the brightness level above which a scene counts as
// lit: 70 on the 8-bit sample scale, normalized the same way Calculate
// normalizes its result.
const LightOnThreshold = 70 / 256.0

// Calculate computes the mean sample intensity of img, normalized to
// [0, 255/256]. The reduction runs in three stages: mean across rows per
// (column, channel), mean across columns per channel, then an unweighted
// mean across channels. The final division is by 256.0, not 255.0 — the
// reference output this tool stays compatible with normalizes that way,
// so the theoretical maximum is just under 1.0.
func Calculate(img image.Image) float64 {
	if gray, ok := img.(*image.Gray); ok {
		return calculateGray(gray)
	}
	return calculateRGB(img)
}

// LightsOn reports whether a brightness value indicates the lights are
// on. The comparison is strictly greater-than: a value exactly at the
// threshold classifies as off.
func LightsOn(brightness float64) bool {
	return brightness > LightOnThreshold
}

func calculateRGB(img image.Image) float64 {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return 0
	}

	// Stage one: collapse the height axis, one mean per (column, channel).
	var colMeans [3][]float64
	var colBuf [3][]float64
	for c := range colMeans {
		colMeans[c] = make([]float64, width)
		colBuf[c] = make([]float64, height)
	}

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			colBuf[0][y] = float64(r >> 8)
			colBuf[1][y] = float64(g >> 8)
			colBuf[2][y] = float64(b >> 8)
		}
		for c := range colBuf {
			colMeans[c][x] = stat.Mean(colBuf[c], nil)
		}
	}

	// Stage two: collapse the width axis, one mean per channel.
	channelMeans := make([]float64, len(colMeans))
	for c := range colMeans {
		channelMeans[c] = stat.Mean(colMeans[c], nil)
	}

	// Stage three: unweighted mean across channels, then normalize.
	return stat.Mean(channelMeans, nil) / 256.0
}

// calculateGray is the single-channel path: the per-channel vector
// degenerates to one value, so only the two axis reductions remain.
func calculateGray(gray *image.Gray) float64 {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return 0
	}

	colMeans := make([]float64, width)
	colBuf := make([]float64, height)

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			colBuf[y] = float64(gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
		}
		colMeans[x] = stat.Mean(colBuf, nil)
	}

	return stat.Mean(colMeans, nil) / 256.0
}
