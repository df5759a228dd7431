// Adjusts image dimensions, orientation, or structure.
package adjustments

import (
	"errors"

	"github.com/nachoh8/BMP-Project/internal/bmp"
)

// Crops a region of the bitmap into a fresh bitmap with the same
// channel count. Coordinates are buffer coordinates: (0, 0) is the
// lower-left corner (rows are stored bottom-up).
func Crop(b *bmp.Bitmap, x, y, width, height int) (*bmp.Bitmap, error) {
	// Validate bounds
	if x < 0 || y < 0 {
		return nil, errors.New("invalid bounds: origin must not be negative")
	}
	if x+width > b.Width() {
		return nil, errors.New("invalid bounds: width out of bounds")
	} else if y+height > b.Height() {
		return nil, errors.New("invalid bounds: height out of bounds")
	}

	cropped, err := bmp.New(width, height, b.Channels() == 4)
	if err != nil {
		return nil, err
	}

	// Copy the region row by row
	channels := b.Channels()
	for row := 0; row < height; row++ {
		src := b.PixOffset(x, y+row)
		dst := cropped.PixOffset(0, row)
		copy(cropped.Pix()[dst:dst+width*channels], b.Pix()[src:src+width*channels])
	}

	return cropped, nil
}
