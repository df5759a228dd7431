// bmp package implements an uncompressed 24/32-bit bitmap codec over a
// flat BGR[A] pixel buffer.
package bmp

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// A Layout is the fixed geometry of a pixel buffer. It is computed once
// at construction and never changes; the file headers are derived from
// it at encode time.
type Layout struct {
	Width     int // width in pixels
	Height    int // height in pixels
	Channels  int // bytes per pixel (3 = BGR, 4 = BGRA)
	RowStride int // unpadded row length in bytes (Width * Channels)
}

// PaddedStride returns RowStride rounded up to the 4-byte boundary the
// file format requires for on-disk rows.
func (l Layout) PaddedStride() int {
	return alignStride(l.RowStride, 4)
}

// A Bitmap owns a bottom-up BGR[A] pixel buffer: pixel (x, y) occupies
// bytes [Channels*(y*Width+x), +Channels), and row y == 0 is the visual
// bottom of the image. Width, height and channel count are immutable
// after construction; only pixel contents change.
type Bitmap struct {
	layout   Layout
	info     InfoHeader // informational fields preserved from Decode
	data     []byte
	warnings []error
}

// New creates a zero-initialized bitmap: transparent black for 32-bit
// (hasAlpha), black for 24-bit.
func New(width, height int, hasAlpha bool) (*Bitmap, error) {
	if width <= 0 {
		return nil, errors.New("width must be greater than 0")
	} else if height <= 0 {
		return nil, errors.New("height must be greater than 0")
	}

	channels := 3
	if hasAlpha {
		channels = 4
	}

	layout := Layout{
		Width:     width,
		Height:    height,
		Channels:  channels,
		RowStride: width * channels,
	}

	return &Bitmap{
		layout: layout,
		data:   make([]byte, width*height*channels),
	}, nil
}

// Decode reads a bitmap file from disk.
func Decode(path string) (*Bitmap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open the input image file: %w", err)
	}
	defer file.Close()

	return DecodeFrom(file)
}

// DecodeFrom reads a bitmap from r. A seeker is required because the
// pixel array lives at an absolute offset: some editors put vendor
// padding between the headers and the pixel data, which must be skipped
// (and is dropped on re-encode, the headers are normalized to the
// minimal canonical layout).
//
// Recoverable deviations (unexpected color masks or color space,
// missing bit-mask info on a 32-bit file) do not fail the decode; they
// are collected on the returned Bitmap, see Warnings.
func DecodeFrom(r io.ReadSeeker) (*Bitmap, error) {
	var fileHeader FileHeader
	if err := binary.Read(r, binary.LittleEndian, &fileHeader); err != nil {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	if fileHeader.Type != magicBM {
		return nil, ErrBadMagic
	}

	var infoHeader InfoHeader
	if err := binary.Read(r, binary.LittleEndian, &infoHeader); err != nil {
		return nil, fmt.Errorf("reading info header: %w", err)
	}

	if infoHeader.BitCount != 24 && infoHeader.BitCount != 32 {
		return nil, fmt.Errorf("%w: only 24 and 32 bits-per-pixel are supported, got %d", ErrUnsupportedFormat, infoHeader.BitCount)
	}
	if infoHeader.Compression != compressionNone && infoHeader.Compression != compressionBitFields {
		return nil, fmt.Errorf("%w: compressed pixel data (compression %d)", ErrUnsupportedFormat, infoHeader.Compression)
	}
	if infoHeader.Height < 0 {
		// Only bottom-up images (origin in the lower left corner)
		// are supported.
		return nil, fmt.Errorf("%w: top-down image (negative height)", ErrUnsupportedFormat)
	}
	if infoHeader.Width <= 0 || infoHeader.Height == 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrUnsupportedFormat, infoHeader.Width, infoHeader.Height)
	}

	// The ColorHeader is used only for transparent images.
	var warnings []error
	if infoHeader.BitCount == 32 {
		if infoHeader.Size >= infoHeaderSize+colorHeaderSize {
			var colorHeader ColorHeader
			if err := binary.Read(r, binary.LittleEndian, &colorHeader); err != nil {
				return nil, fmt.Errorf("reading color header: %w", err)
			}
			warnings = checkColorHeader(colorHeader)
		} else {
			warnings = append(warnings, FormatWarning("file does not contain bit mask information, assuming BGRA pixel data"))
		}
	}

	// Jump to the pixel array (OffBits), skipping any vendor bytes
	// between the headers and the data.
	if _, err := r.Seek(int64(fileHeader.OffBits), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to pixel data: %w", err)
	}

	channels := int(infoHeader.BitCount) / 8
	layout := Layout{
		Width:     int(infoHeader.Width),
		Height:    int(infoHeader.Height),
		Channels:  channels,
		RowStride: int(infoHeader.Width) * channels,
	}
	data := make([]byte, layout.Width*layout.Height*channels)

	if layout.RowStride == layout.PaddedStride() {
		// Rows need no padding: the pixel array is one contiguous block.
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, fmt.Errorf("reading pixel data: %w", err)
		}
	} else {
		padding := make([]byte, layout.PaddedStride()-layout.RowStride)
		for y := 0; y < layout.Height; y++ {
			row := data[y*layout.RowStride : (y+1)*layout.RowStride]
			if _, err := io.ReadFull(r, row); err != nil {
				return nil, fmt.Errorf("reading pixel row %d: %w", y, err)
			}
			if _, err := io.ReadFull(r, padding); err != nil {
				return nil, fmt.Errorf("reading row padding: %w", err)
			}
		}
	}

	return &Bitmap{
		layout:   layout,
		info:     infoHeader,
		data:     data,
		warnings: warnings,
	}, nil
}

// Compares the color header against the expected BGRA/sRGB layout.
// Mismatches are recoverable: decoding proceeds assuming BGRA/sRGB.
func checkColorHeader(h ColorHeader) []error {
	var warnings []error
	if h.RedMask != expectedColorHeader.RedMask ||
		h.GreenMask != expectedColorHeader.GreenMask ||
		h.BlueMask != expectedColorHeader.BlueMask ||
		h.AlphaMask != expectedColorHeader.AlphaMask {
		warnings = append(warnings, FormatWarning("unexpected color mask format, expecting BGRA pixel data"))
	}
	if h.ColorSpaceType != expectedColorHeader.ColorSpaceType {
		warnings = append(warnings, FormatWarning("unexpected color space type, expecting sRGB values"))
	}
	return warnings
}

// Encode saves the bitmap onto local disk.
func (b *Bitmap) Encode(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to open the output image file: %w", err)
	}
	defer file.Close()

	// Create a buffer (to reduce syscalls)
	w := bufio.NewWriter(file)
	if err := b.EncodeTo(w); err != nil {
		return err
	}
	return w.Flush()
}

// EncodeTo writes the bitmap to w in the canonical minimal layout:
// headers first, then the pixel rows bottom-up, each padded to a 4-byte
// boundary.
func (b *Bitmap) EncodeTo(w io.Writer) error {
	if b.layout.Channels != 3 && b.layout.Channels != 4 {
		return fmt.Errorf("%w: only 24 or 32 bits-per-pixel bitmaps can be encoded", ErrUnsupportedFormat)
	}

	fileHeader, infoHeader := b.headers()
	if err := binary.Write(w, binary.LittleEndian, &fileHeader); err != nil {
		return fmt.Errorf("writing file header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, &infoHeader); err != nil {
		return fmt.Errorf("writing info header: %w", err)
	}
	if b.layout.Channels == 4 {
		colorHeader := expectedColorHeader
		if err := binary.Write(w, binary.LittleEndian, &colorHeader); err != nil {
			return fmt.Errorf("writing color header: %w", err)
		}
	}

	if b.layout.RowStride == b.layout.PaddedStride() {
		if _, err := w.Write(b.data); err != nil {
			return fmt.Errorf("writing pixel data: %w", err)
		}
		return nil
	}

	padding := make([]byte, b.layout.PaddedStride()-b.layout.RowStride)
	for y := 0; y < b.layout.Height; y++ {
		row := b.data[y*b.layout.RowStride : (y+1)*b.layout.RowStride]
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("writing pixel row %d: %w", y, err)
		}
		if _, err := w.Write(padding); err != nil {
			return fmt.Errorf("writing row padding: %w", err)
		}
	}
	return nil
}

// Derives the canonical file and info headers from the layout. The
// informational fields (resolution, color counts, image size) carried
// over from Decode are preserved verbatim.
func (b *Bitmap) headers() (FileHeader, InfoHeader) {
	infoHeader := b.info
	infoHeader.Width = int32(b.layout.Width)
	infoHeader.Height = int32(b.layout.Height)
	infoHeader.Planes = 1
	infoHeader.BitCount = uint16(b.layout.Channels * 8)

	fileHeader := FileHeader{Type: magicBM}
	if b.layout.Channels == 4 {
		infoHeader.Size = infoHeaderSize + colorHeaderSize
		infoHeader.Compression = compressionBitFields
		fileHeader.OffBits = fileHeaderSize + infoHeaderSize + colorHeaderSize
	} else {
		infoHeader.Size = infoHeaderSize
		infoHeader.Compression = compressionNone
		fileHeader.OffBits = fileHeaderSize + infoHeaderSize
	}
	fileHeader.Size = fileHeader.OffBits + uint32(b.layout.Height*b.layout.PaddedStride())

	return fileHeader, infoHeader
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int {
	return b.layout.Width
}

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int {
	return b.layout.Height
}

// Channels returns the number of bytes per pixel (3 or 4).
func (b *Bitmap) Channels() int {
	return b.layout.Channels
}

// Layout returns the fixed buffer geometry.
func (b *Bitmap) Layout() Layout {
	return b.layout
}

// FileSize returns the canonical on-disk size of the bitmap in bytes,
// including per-row padding.
func (b *Bitmap) FileSize() int {
	fileHeader, _ := b.headers()
	return int(fileHeader.Size)
}

// Warnings returns the recoverable format deviations found by Decode.
func (b *Bitmap) Warnings() []error {
	return b.warnings
}

// Pix returns the underlying pixel buffer: bottom-up rows of BGR[A]
// bytes. The slice aliases the bitmap's storage.
func (b *Bitmap) Pix() []byte {
	return b.data
}

// PixOffset returns the index into Pix of the first byte of pixel (x, y).
func (b *Bitmap) PixOffset(x, y int) int {
	return b.layout.Channels * (y*b.layout.Width + x)
}

func (b *Bitmap) inBounds(x, y int) bool {
	return x >= 0 && x < b.layout.Width && y >= 0 && y < b.layout.Height
}

// Pixel returns the color of pixel (x, y). Alpha is 255 on a 3-channel
// buffer.
func (b *Bitmap) Pixel(x, y int) (Color, error) {
	if !b.inBounds(x, y) {
		return Color{}, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, b.layout.Width, b.layout.Height)
	}

	pos := b.PixOffset(x, y)
	c := Color{B: b.data[pos], G: b.data[pos+1], R: b.data[pos+2], A: 255}
	if b.layout.Channels == 4 {
		c.A = b.data[pos+3]
	}
	return c, nil
}

// SetPixel sets pixel (x, y) to c. The alpha byte is written only on a
// 4-channel buffer.
func (b *Bitmap) SetPixel(x, y int, c Color) error {
	if !b.inBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, b.layout.Width, b.layout.Height)
	}

	pos := b.PixOffset(x, y)
	b.data[pos] = c.B
	b.data[pos+1] = c.G
	b.data[pos+2] = c.R
	if b.layout.Channels == 4 {
		b.data[pos+3] = c.A
	}
	return nil
}

// Fill overwrites every byte of the buffer with v. This is a raw fill:
// the alpha bytes of a 4-channel buffer get v too.
func (b *Bitmap) Fill(v byte) {
	for i := range b.data {
		b.data[i] = v
	}
}

// CopyFrom replaces the pixel contents with those of src. Both bitmaps
// must have the same width, height and channel count.
func (b *Bitmap) CopyFrom(src *Bitmap) error {
	if src.layout != b.layout {
		return fmt.Errorf("%w: %dx%dx%d vs %dx%dx%d", ErrDimensionMismatch,
			src.layout.Width, src.layout.Height, src.layout.Channels,
			b.layout.Width, b.layout.Height, b.layout.Channels)
	}
	copy(b.data, src.data)
	return nil
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	data := make([]byte, len(b.data))
	copy(data, b.data)

	return &Bitmap{
		layout:   b.layout,
		info:     b.info,
		data:     data,
		warnings: b.warnings,
	}
}

// Grayscale converts the image in place: every color channel becomes
// round(b*wb + g*wg + r*wr), clamped to 255. Alpha is untouched. The
// customary weights are 0.33 each; weights summing above 1 complete the
// conversion anyway and return ErrInvalidWeights for the caller to judge.
func (b *Bitmap) Grayscale(wr, wg, wb float64) error {
	var werr error
	if wr+wg+wb > 1 {
		werr = ErrInvalidWeights
	}

	channels := b.layout.Channels
	for i := 0; i < len(b.data); i += channels {
		grey := math.Round(float64(b.data[i])*wb + float64(b.data[i+1])*wg + float64(b.data[i+2])*wr)
		if grey > 255 {
			grey = 255
		}
		v := byte(grey)
		b.data[i] = v   // blue
		b.data[i+1] = v // green
		b.data[i+2] = v // red
	}
	return werr
}

// FlipX mirrors the image across its vertical axis, in place. On odd
// widths the center column stays put.
func (b *Bitmap) FlipX() {
	for y := 0; y < b.layout.Height; y++ {
		for x := 0; x < b.layout.Width / 2; x++ {
			b.swapPixels(b.PixOffset(x, y), b.PixOffset(b.layout.Width-1-x, y))
		}
	}
}

// FlipY mirrors the image across its horizontal axis, in place. On odd
// heights the center row stays put.
func (b *Bitmap) FlipY() {
	for x := 0; x < b.layout.Width; x++ {
		for y := 0; y < b.layout.Height / 2; y++ {
			b.swapPixels(b.PixOffset(x, y), b.PixOffset(x, b.layout.Height-1-y))
		}
	}
}

// Exchanges all channel bytes (alpha included) of two pixels.
func (b *Bitmap) swapPixels(pos1, pos2 int) {
	for c := 0; c < b.layout.Channels; c++ {
		b.data[pos1+c], b.data[pos2+c] = b.data[pos2+c], b.data[pos1+c]
	}
}
