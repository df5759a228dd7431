package bmp

// A Color is a single pixel value. Channels are stored in conventional
// RGBA order here; the buffer and the file keep them as BGR[A].
type Color struct {
	R, G, B, A uint8
}

// RGB returns a fully opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a Color with an explicit alpha value.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// A Point is a pixel position on the buffer. Equality (==) is
// component-wise.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}
