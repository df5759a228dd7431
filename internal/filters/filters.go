// Filters perform color manipulation and per-pixel operations
package filters

import (
	"errors"
	"math"

	"github.com/nachoh8/BMP-Project/internal/bmp"
)

// Inverts (negates) the color channels of the bitmap. Alpha is untouched.
func Invert(b *bmp.Bitmap) {
	pix := b.Pix()
	channels := b.Channels()

	for i := 0; i < len(pix); i += channels {
		pix[i] = 255 - pix[i]     // blue
		pix[i+1] = 255 - pix[i+1] // green
		pix[i+2] = 255 - pix[i+2] // red
	}
}

// Adjusts the Brightness of a bitmap in-place.
//
// method can be "add" (adds value to each channel) or "multiply"
// (multiplies each channel by value). Channel values are clipped to
// [0, 255]; alpha is untouched.
func Brightness(b *bmp.Bitmap, factor float64, method string) error {
	var operation func(x, y float64) float64

	// Select an operation of brightness (additive or multiplicative)
	switch method {
	case "add":
		operation = func(x, y float64) float64 {
			return x + y
		}
	case "multiply":
		operation = func(x, y float64) float64 {
			return x * y
		}
	default:
		return errors.New("invalid method: method must be add or multiply")
	}

	pix := b.Pix()
	channels := b.Channels()

	// Apply brightness (or darkness)
	for i := 0; i < len(pix); i += channels {
		for c := 0; c < 3; c++ {
			pix[i+c] = clip(operation(float64(pix[i+c]), factor))
		}
	}
	return nil
}

// Adjusts the Contrast of a bitmap in-place.
// factor > 1.0 increases Contrast, factor < 1.0 decreases it.
func Contrast(b *bmp.Bitmap, factor float64) {
	pix := b.Pix()
	channels := b.Channels()

	// Compute mean for each channel
	var sumB, sumG, sumR int
	for i := 0; i < len(pix); i += channels {
		sumB += int(pix[i])
		sumG += int(pix[i+1])
		sumR += int(pix[i+2])
	}
	totalPixels := b.Width() * b.Height()
	mean := [3]float64{
		float64(sumB / totalPixels),
		float64(sumG / totalPixels),
		float64(sumR / totalPixels),
	}

	// Apply contrast
	for i := 0; i < len(pix); i += channels {
		for c := 0; c < 3; c++ {
			pix[i+c] = clip(float64(pix[i+c])*factor + (1-factor)*mean[c])
		}
	}
}

func clip(v float64) byte {
	return byte(math.Min(math.Max(v, 0), 255))
}
