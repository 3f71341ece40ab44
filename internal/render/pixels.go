package render

import "image/color"

// FillBlock paints a size×size square of col into an RGBA buffer whose rows are
// stride pixels wide, with the square's top-left corner at pixel (x, y).
func FillBlock(buf []byte, stride, x, y, size int, col color.RGBA) {
	for dy := 0; dy < size; dy++ {
		row := ((y+dy)*stride + x) * 4
		for dx := 0; dx < size; dx++ {
			base := row + dx*4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// PixelAt reads the RGBA value at pixel (x, y) of a buffer stride pixels wide.
func PixelAt(buf []byte, stride, x, y int) color.RGBA {
	base := (y*stride + x) * 4
	return color.RGBA{R: buf[base+0], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}
