// BMP-specific structs, format constants and stride math
package bmp

// The FileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader

type FileHeader struct {
	Type      [2]byte // The file type: must be 0x4d42 (ASCII string "BM").
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; must be zero.
	Reserved2 uint16  // Reserved; must be zero.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// The InfoHeader structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].

type InfoHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels (positive = bottom-up).
	Planes          uint16 // The number of planes for the target device. Always 1.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression (0 = none, 3 = bit-fields).
	SizeImage       uint32 // The size of the image (in bytes). 0 for uncompressed.
	XPixelsPerM     int32  // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32  // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

// The ColorHeader structure holds the channel bit-masks and color space
// of a 32-bit bitmap. It directly follows the InfoHeader on disk, making
// the combined info header 124 bytes (the V5 header length).

type ColorHeader struct {
	RedMask        uint32     // Bit mask for the red channel.
	GreenMask      uint32     // Bit mask for the green channel.
	BlueMask       uint32     // Bit mask for the blue channel.
	AlphaMask      uint32     // Bit mask for the alpha channel.
	ColorSpaceType uint32     // "sRGB" (0x73524742).
	Unused         [16]uint32 // Unused data for sRGB color space.
}

const (
	fileHeaderSize  = 14 // binary size of FileHeader
	infoHeaderSize  = 40 // binary size of InfoHeader
	colorHeaderSize = 84 // binary size of ColorHeader

	compressionNone      = 0 // BI_RGB
	compressionBitFields = 3 // BI_BITFIELDS

	colorSpaceSRGB = 0x73524742 // "sRGB" tag
)

var magicBM = [2]byte{'B', 'M'}

// The color header every 32-bit file is expected to carry: BGRA byte
// order in the sRGB color space.
var expectedColorHeader = ColorHeader{
	RedMask:        0x00ff0000,
	GreenMask:      0x0000ff00,
	BlueMask:       0x000000ff,
	AlphaMask:      0xff000000,
	ColorSpaceType: colorSpaceSRGB,
}

// Rounds stride up to the next multiple of align. Decode, Encode, New
// and FileSize all share this one computation.
func alignStride(stride, align int) int {
	if rem := stride % align; rem != 0 {
		return stride + align - rem
	}
	return stride
}
