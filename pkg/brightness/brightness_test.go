package brightness

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func createTestImage(width, height int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCalculateUniform(t *testing.T) {
	testCases := []struct {
		name   string
		sample uint8
	}{
		{"all black", 0},
		{"dark", 32},
		{"mid gray", 128},
		{"all white", 255},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img := createTestImage(40, 30, color.RGBA{tc.sample, tc.sample, tc.sample, 255})
			got := Calculate(img)
			want := float64(tc.sample) / 256.0

			if math.Abs(got-want) > 1e-9 {
				t.Errorf("Expected brightness %f, got %f", want, got)
			}
		})
	}
}

func TestCalculateSinglePixel(t *testing.T) {
	img := createTestImage(1, 1, color.RGBA{10, 20, 30, 255})

	// Channel mean is 20, so brightness is 20/256.
	got := Calculate(img)
	want := 20.0 / 256.0

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected brightness %f, got %f", want, got)
	}
}

func TestCalculateGrayscale(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			gray.Set(x, y, color.Gray{128})
		}
	}

	got := Calculate(gray)
	want := 128.0 / 256.0

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected brightness %f, got %f", want, got)
	}
}

func TestCalculatePermutationInvariance(t *testing.T) {
	const width, height = 24, 18

	rng := rand.New(rand.NewSource(1))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255,
			})
		}
	}

	// Reverse both axes; a pure mean must not care about pixel order.
	flipped := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			flipped.Set(width-1-x, height-1-y, img.At(x, y))
		}
	}

	a, b := Calculate(img), Calculate(flipped)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("Expected brightness to be permutation invariant, got %f and %f", a, b)
	}
}

func TestCalculateLinearScaling(t *testing.T) {
	dim := createTestImage(20, 20, color.RGBA{50, 50, 50, 255})
	bright := createTestImage(20, 20, color.RGBA{100, 100, 100, 255})

	a, b := Calculate(dim), Calculate(bright)
	if math.Abs(b-2*a) > 1e-9 {
		t.Errorf("Expected brightness to scale linearly, got %f and %f", a, b)
	}
}

func TestCalculateMonotonic(t *testing.T) {
	darker := createTestImage(10, 10, color.RGBA{60, 60, 60, 255})
	brighter := createTestImage(10, 10, color.RGBA{61, 61, 61, 255})

	if Calculate(brighter) <= Calculate(darker) {
		t.Error("Expected brighter image to yield strictly larger brightness")
	}
}

func TestLightsOnThresholdBoundary(t *testing.T) {
	testCases := []struct {
		name       string
		brightness float64
		want       bool
	}{
		{"exactly at threshold", 70.0 / 256.0, false},
		{"just above threshold", 71.0 / 256.0, true},
		{"just below threshold", 69.0 / 256.0, false},
		{"zero", 0, false},
		{"maximum", 255.0 / 256.0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LightsOn(tc.brightness); got != tc.want {
				t.Errorf("LightsOn(%f) = %v, want %v", tc.brightness, got, tc.want)
			}
		})
	}
}

func TestLightsOnFromImage(t *testing.T) {
	lit := createTestImage(12, 12, color.RGBA{71, 71, 71, 255})
	dark := createTestImage(12, 12, color.RGBA{69, 69, 69, 255})

	if !LightsOn(Calculate(lit)) {
		t.Error("Expected uniform 71 image to classify as lights on")
	}
	if LightsOn(Calculate(dark)) {
		t.Error("Expected uniform 69 image to classify as lights off")
	}
}
