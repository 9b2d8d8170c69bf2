//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// labelScale enlarges the 7x13 bitmap font to a readable size.
const labelScale = 2

// Painter draws scenes onto an ebiten screen.
type Painter struct {
	pixel *ebiten.Image
	fg    color.Color
	bg    color.Color
}

// NewPainter allocates the shared 1x1 source image used for rectangles.
func NewPainter() *Painter {
	p := &Painter{pixel: ebiten.NewImage(1, 1), fg: color.White, bg: color.Black}
	p.pixel.Fill(color.White)
	return p
}

// Draw clears the screen and paints every rectangle and label of sc.
func (p *Painter) Draw(screen *ebiten.Image, sc Scene) {
	screen.Fill(p.bg)
	for _, r := range sc.Rects {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(r.W, r.H)
		op.GeoM.Translate(r.X, r.Y)
		screen.DrawImage(p.pixel, op)
	}
	face := basicfont.Face7x13
	for _, l := range sc.Labels {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(labelScale, labelScale)
		op.GeoM.Translate(float64(l.X), float64(l.Y))
		op.ColorM.ScaleWithColor(p.fg)
		text.DrawWithOptions(screen, l.Text, face, op)
	}
}
