package filters_test

import (
	"bytes"
	"testing"

	"github.com/nachoh8/BMP-Project/internal/bmp"
	"github.com/nachoh8/BMP-Project/internal/filters"
)

func newBitmap(t *testing.T, width, height int, hasAlpha bool) *bmp.Bitmap {
	t.Helper()
	b, err := bmp.New(width, height, hasAlpha)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestInvert(t *testing.T) {
	b := newBitmap(t, 2, 2, true)
	b.SetPixel(0, 0, bmp.RGBA(10, 100, 250, 77))

	filters.Invert(b)

	c, err := b.Pixel(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := bmp.RGBA(245, 155, 5, 77); c != want {
		t.Errorf("inverted pixel = %+v, want %+v (alpha untouched)", c, want)
	}

	// Inverting twice restores the image.
	before := append([]byte(nil), b.Pix()...)
	filters.Invert(b)
	filters.Invert(b)
	if !bytes.Equal(b.Pix(), before) {
		t.Error("double inversion is not identity")
	}
}

func TestBrightness(t *testing.T) {
	t.Run("add clamps high", func(t *testing.T) {
		b := newBitmap(t, 1, 1, false)
		b.SetPixel(0, 0, bmp.RGB(250, 100, 0))
		if err := filters.Brightness(b, 10, "add"); err != nil {
			t.Fatal(err)
		}
		if c, _ := b.Pixel(0, 0); c != bmp.RGB(255, 110, 10) {
			t.Errorf("pixel = %+v", c)
		}
	})

	t.Run("add clamps low", func(t *testing.T) {
		b := newBitmap(t, 1, 1, false)
		b.SetPixel(0, 0, bmp.RGB(10, 30, 200))
		if err := filters.Brightness(b, -20, "add"); err != nil {
			t.Fatal(err)
		}
		if c, _ := b.Pixel(0, 0); c != bmp.RGB(0, 10, 180) {
			t.Errorf("pixel = %+v", c)
		}
	})

	t.Run("multiply", func(t *testing.T) {
		b := newBitmap(t, 1, 1, false)
		b.SetPixel(0, 0, bmp.RGB(100, 50, 200))
		if err := filters.Brightness(b, 1.5, "multiply"); err != nil {
			t.Fatal(err)
		}
		if c, _ := b.Pixel(0, 0); c != bmp.RGB(150, 75, 255) {
			t.Errorf("pixel = %+v", c)
		}
	})

	t.Run("invalid method", func(t *testing.T) {
		b := newBitmap(t, 1, 1, false)
		if err := filters.Brightness(b, 1, "divide"); err == nil {
			t.Error("want error for unknown method")
		}
	})

	t.Run("alpha untouched", func(t *testing.T) {
		b := newBitmap(t, 1, 1, true)
		b.SetPixel(0, 0, bmp.RGBA(10, 10, 10, 42))
		if err := filters.Brightness(b, 100, "add"); err != nil {
			t.Fatal(err)
		}
		if c, _ := b.Pixel(0, 0); c.A != 42 {
			t.Errorf("alpha = %d, want 42", c.A)
		}
	})
}

func TestContrast(t *testing.T) {
	// A uniform image is its own mean, so contrast must not move it.
	// Factor 1.5 keeps the arithmetic exact in floating point.
	b := newBitmap(t, 2, 2, false)
	b.Fill(100)
	filters.Contrast(b, 1.5)
	for i, v := range b.Pix() {
		if v != 100 {
			t.Fatalf("byte %d = %d, uniform image changed", i, v)
		}
	}

	// Contrast > 1 pushes values away from the mean.
	b2 := newBitmap(t, 2, 1, false)
	b2.SetPixel(0, 0, bmp.RGB(100, 100, 100))
	b2.SetPixel(1, 0, bmp.RGB(200, 200, 200))
	filters.Contrast(b2, 1.5)

	dark, _ := b2.Pixel(0, 0)
	bright, _ := b2.Pixel(1, 0)
	if dark.R >= 100 {
		t.Errorf("dark pixel = %d, want pushed below 100", dark.R)
	}
	if bright.R <= 200 {
		t.Errorf("bright pixel = %d, want pushed above 200", bright.R)
	}
}
