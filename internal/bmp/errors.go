package bmp

import "errors"

// Hard failures. Operations that return one of these (possibly wrapped
// with context, match with errors.Is) did not produce or modify a buffer.
var (
	// ErrBadMagic means the file does not start with the "BM" tag.
	ErrBadMagic = errors.New("invalid file: provided file is not a bitmap")

	// ErrUnsupportedFormat covers bit depths other than 24/32,
	// compressed pixel data and top-down (negative height) images.
	ErrUnsupportedFormat = errors.New("unsupported BMP format")

	// ErrOutOfBounds reports a pixel coordinate outside the buffer.
	ErrOutOfBounds = errors.New("pixel coordinate out of bounds")

	// ErrDimensionMismatch reports a copy between buffers whose
	// width, height or channel count differ.
	ErrDimensionMismatch = errors.New("bitmap dimensions do not match")

	// ErrInvalidWeights reports grayscale weights summing above 1.
	// The conversion still completes with the given weights.
	ErrInvalidWeights = errors.New("invalid grayscale weights: sum must not exceed 1")

	// ErrUnsupportedOperation reports an alpha-only operation on a
	// buffer without an alpha channel.
	ErrUnsupportedOperation = errors.New("operation requires a 32 bits/pixel bitmap")
)

// A FormatWarning is a recoverable finding from Decode: the file deviates
// from the expected layout (color masks, color space, missing bit-mask
// info) but decoding proceeded assuming BGRA/sRGB. Collected on the
// Bitmap, retrievable via Warnings.
type FormatWarning string

func (w FormatWarning) Error() string {
	return "bmp: " + string(w)
}
