// Demo: draw some shapes on a canvas, save it as a BMP file, read it
// back and preview it in the terminal.
package main

import (
	"fmt"
	"log"

	"github.com/nachoh8/BMP-Project/internal/bmp"
	"github.com/nachoh8/BMP-Project/internal/raster"
	"github.com/nachoh8/BMP-Project/internal/utils"
)

func main() {
	canvas, err := bmp.New(24, 24, false)
	if err != nil {
		log.Fatal(err)
	}
	canvas.Fill(255) // white background

	d := raster.New(canvas)
	if err := d.DrawCircle(11, 11, 9, bmp.RGB(200, 30, 30)); err != nil {
		log.Fatal(err)
	}
	if err := d.DrawTriangle(bmp.Pt(4, 4), bmp.Pt(19, 4), bmp.Pt(11, 19), bmp.RGB(30, 30, 200)); err != nil {
		log.Fatal(err)
	}
	if err := d.DrawRegion(10, 10, 4, 4, bmp.RGB(30, 160, 60)); err != nil {
		log.Fatal(err)
	}
	if err := d.DrawLine(0, 0, 23, 23, bmp.RGB(0, 0, 0)); err != nil {
		log.Fatal(err)
	}

	if err := canvas.Encode("out.bmp"); err != nil {
		log.Fatal(err)
	}

	// Read it back and preview it
	img, err := bmp.Decode("out.bmp")
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range img.Warnings() {
		log.Println("warning:", w)
	}

	printBitmap(img)
	printMetadata(img)
}

// Print the bitmap in terminal. Use for small images only
func printBitmap(b *bmp.Bitmap) {
	// Rows are stored bottom-up, print the top row first
	for y := b.Height() - 1; y >= 0; y-- {
		for x := 0; x < b.Width(); x++ {
			c, err := b.Pixel(x, y)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%s", utils.ColoredBlock("  ", int(c.R), int(c.G), int(c.B)))
		}
		fmt.Printf("\n")
	}
}

// Print the bitmap metadata in terminal (in human-readable format)
func printMetadata(b *bmp.Bitmap) {
	fmt.Printf("Filesize: \t%v bytes\n", b.FileSize())
	fmt.Printf("Width: \t\t%v px\n", b.Width())
	fmt.Printf("Height: \t%v px\n", b.Height())
	fmt.Printf("Channels: \t%v\n", b.Channels())
	fmt.Printf("Stride: \t%v bytes\n", b.Layout().RowStride)
	fmt.Printf("Padded: \t%v bytes\n", b.Layout().PaddedStride())
}
