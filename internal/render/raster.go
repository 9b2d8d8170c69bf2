package render

import (
	"image"
	"image/color"
	"math"
)

// Rasterize paints the scene's rectangles into a new RGBA image. Labels are
// not rasterized; headless snapshots only need the court.
func Rasterize(sc Scene, on, off color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sc.Size.W, sc.Size.H))
	fillRGBA(img.Pix, off)
	rOn, gOn, bOn, aOn := on.RGBA()
	px := [4]byte{uint8(rOn >> 8), uint8(gOn >> 8), uint8(bOn >> 8), uint8(aOn >> 8)}
	for _, r := range sc.Rects {
		x0 := clampInt(int(math.Floor(r.X)), 0, sc.Size.W)
		y0 := clampInt(int(math.Floor(r.Y)), 0, sc.Size.H)
		x1 := clampInt(int(math.Ceil(r.X+r.W)), 0, sc.Size.W)
		y1 := clampInt(int(math.Ceil(r.Y+r.H)), 0, sc.Size.H)
		for y := y0; y < y1; y++ {
			row := img.Pix[y*img.Stride:]
			for x := x0; x < x1; x++ {
				copy(row[x*4:x*4+4], px[:])
			}
		}
	}
	return img
}

// fillRGBA sets every pixel in buf to c.
func fillRGBA(buf []byte, c color.Color) {
	r, g, b, a := c.RGBA()
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
