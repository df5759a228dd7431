// raster package implements shape drawing on a bitmap pixel buffer.
package raster

import (
	"errors"

	"github.com/nachoh8/BMP-Project/internal/bmp"
)

// ErrNothingToUndo is returned by Undo when no snapshot is held.
var ErrNothingToUndo = errors.New("nothing to undo")

// Snapshots kept by the undo history at most.
const maxUndo = 10

// A Drawer rasterizes shapes onto a borrowed bitmap. It never owns the
// bitmap and must not outlive it; the caller keeps exclusive ownership.
type Drawer struct {
	img  *bmp.Bitmap
	undo []*bmp.Bitmap
}

// New returns a Drawer over img.
func New(img *bmp.Bitmap) *Drawer {
	return &Drawer{img: img}
}

// DrawPixel sets a single pixel.
func (d *Drawer) DrawPixel(x, y int, c bmp.Color) error {
	return d.img.SetPixel(x, y, c)
}

// DrawPoint sets the pixel at p.
func (d *Drawer) DrawPoint(p bmp.Point, c bmp.Color) error {
	return d.DrawPixel(p.X, p.Y, c)
}

// DrawLine rasterizes the segment from (x1, y1) to (x2, y2). Both
// endpoints are always plotted. Axis-aligned segments take a direct
// loop; the general case steps an integer DDA along the dominant axis.
func (d *Drawer) DrawLine(x1, y1, x2, y2 int, c bmp.Color) error {
	switch {
	case x1 == x2 && y1 == y2: // One pixel
		return d.DrawPixel(x1, y1, c)

	case y1 == y2: // Horizontal line
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		for x := x1; x < x2; x++ {
			if err := d.DrawPixel(x, y1, c); err != nil {
				return err
			}
		}
		return d.DrawPixel(x2, y2, c)

	case x1 == x2: // Vertical line
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y < y2; y++ {
			if err := d.DrawPixel(x1, y, c); err != nil {
				return err
			}
		}
		return d.DrawPixel(x2, y2, c)
	}

	// DDA: transpose the axes when the line is steeper than 45 degrees
	// so the loop always steps along the dominant axis.
	sx, sy := 1, 1
	if x2 < x1 {
		sx = -1
	}
	if y2 < y1 {
		sy = -1
	}
	dx, dy := abs(x2-x1), abs(y2-y1)

	steep := false
	if dy > dx {
		x1, y1 = y1, x1
		dx, dy = dy, dx
		sx, sy = sy, sx
		steep = true
	}

	e := 2*dy - dx
	for i := 0; i < dx; i++ {
		px, py := x1, y1
		if steep {
			px, py = y1, x1
		}
		if err := d.DrawPixel(px, py, c); err != nil {
			return err
		}

		for e >= 0 {
			y1 += sy
			e -= 2 * dx
		}
		x1 += sx
		e += 2 * dy
	}

	// The stepping loop covers dx points from the first endpoint; the
	// last point is plotted separately so both endpoints are included.
	return d.DrawPixel(x2, y2, c)
}

// DrawTriangle rasterizes the closed outline through p1, p2, p3 (edges
// only, not filled).
func (d *Drawer) DrawTriangle(p1, p2, p3 bmp.Point, c bmp.Color) error {
	if err := d.DrawLine(p1.X, p1.Y, p2.X, p2.Y, c); err != nil {
		return err
	}
	if err := d.DrawLine(p2.X, p2.Y, p3.X, p3.Y, c); err != nil {
		return err
	}
	return d.DrawLine(p3.X, p3.Y, p1.X, p1.Y, c)
}

// DrawCircle rasterizes an unfilled circle outline around (cx, cy)
// using the integer midpoint algorithm with four reflections per step.
func (d *Drawer) DrawCircle(cx, cy, radius int, c bmp.Color) error {
	x := 0
	e := 2 * (1 - radius)

	for radius >= 0 {
		if err := d.DrawPixel(cx+x, cy+radius, c); err != nil {
			return err
		}
		if err := d.DrawPixel(cx+x, cy-radius, c); err != nil {
			return err
		}
		if err := d.DrawPixel(cx-x, cy+radius, c); err != nil {
			return err
		}
		if err := d.DrawPixel(cx-x, cy-radius, c); err != nil {
			return err
		}

		if e+radius > 0 {
			radius--
			e -= 2*radius - 1
		}
		if x > e {
			x++
			e += 2*x + 1
		}
	}
	return nil
}

// DrawRegion fills the rectangle [x, x+w) x [y, y+h).
func (d *Drawer) DrawRegion(x, y, w, h int, c bmp.Color) error {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if err := d.DrawPixel(xx, yy, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// ErasePixel sets a pixel to transparent black. 32 bits/pixel only: on
// a 3-channel bitmap nothing is written and ErrUnsupportedOperation is
// returned.
func (d *Drawer) ErasePixel(x, y int) error {
	if d.img.Channels() != 4 {
		return bmp.ErrUnsupportedOperation
	}
	return d.DrawPixel(x, y, bmp.Color{})
}

// EraseRegion sets every pixel of [x, x+w) x [y, y+h) to transparent
// black. 32 bits/pixel only.
func (d *Drawer) EraseRegion(x, y, w, h int) error {
	if d.img.Channels() != 4 {
		return bmp.ErrUnsupportedOperation
	}
	return d.DrawRegion(x, y, w, h, bmp.Color{})
}

// Snapshot pushes a copy of the current pixel contents onto the undo
// history. Once maxUndo snapshots are held, further ones are dropped.
func (d *Drawer) Snapshot() {
	if len(d.undo) < maxUndo {
		d.undo = append(d.undo, d.img.Clone())
	}
}

// Undo restores the most recent snapshot.
func (d *Drawer) Undo() error {
	if len(d.undo) == 0 {
		return ErrNothingToUndo
	}

	last := d.undo[len(d.undo)-1]
	if err := d.img.CopyFrom(last); err != nil {
		return err
	}
	d.undo = d.undo[:len(d.undo)-1]
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
