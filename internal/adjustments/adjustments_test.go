package adjustments_test

import (
	"testing"

	"github.com/nachoh8/BMP-Project/internal/adjustments"
	"github.com/nachoh8/BMP-Project/internal/bmp"
)

func TestCrop(t *testing.T) {
	src, err := bmp.New(6, 5, true)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			src.SetPixel(x, y, bmp.RGBA(byte(40*x), byte(50*y), byte(x+y), 255))
		}
	}

	got, err := adjustments.Crop(src, 2, 1, 3, 2)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if got.Width() != 3 || got.Height() != 2 || got.Channels() != 4 {
		t.Fatalf("cropped layout = %+v", got.Layout())
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want, err := src.Pixel(x+2, y+1)
			if err != nil {
				t.Fatal(err)
			}
			have, err := got.Pixel(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if have != want {
				t.Errorf("cropped (%d, %d) = %+v, want %+v", x, y, have, want)
			}
		}
	}
}

func TestCropKeepsChannelCount(t *testing.T) {
	src, err := bmp.New(4, 4, false)
	if err != nil {
		t.Fatal(err)
	}
	got, err := adjustments.Crop(src, 0, 0, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got.Channels() != 3 {
		t.Errorf("channels = %d, want 3", got.Channels())
	}
}

func TestCropBounds(t *testing.T) {
	src, err := bmp.New(4, 4, false)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name                string
		x, y, width, height int
	}{
		{"width overflow", 2, 0, 3, 2},
		{"height overflow", 0, 3, 2, 2},
		{"negative origin", -1, 0, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := adjustments.Crop(src, tt.x, tt.y, tt.width, tt.height); err == nil {
				t.Error("Crop succeeded, want bounds error")
			}
		})
	}
}
