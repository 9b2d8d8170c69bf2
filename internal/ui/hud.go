//go:build ebiten

package ui

import (
	"image/color"

	"pong/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent debug panel listing live match parameters.
type HUD struct {
	source   core.ParameterProvider
	width    int
	visible  bool
	snapshot core.ParameterSnapshot
	panel    *ebiten.Image
}

// NewHUD constructs a hidden HUD of the given panel width.
func NewHUD(source core.ParameterProvider, width int) *HUD {
	if width <= 0 {
		width = 220
	}
	return &HUD{source: source, width: width}
}

// Update toggles visibility on F1 and refreshes the snapshot while shown.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		h.visible = !h.visible
	}
	if h.visible {
		h.snapshot = h.source.Parameters()
	}
}

// Draw paints the panel anchored to the top-right corner of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	rows := 0
	for _, g := range h.snapshot.Groups {
		rows += 1 + len(g.Params)
	}
	height := panelPadding*2 + rows*lineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	y := panelPadding + labelBaseline
	for _, g := range h.snapshot.Groups {
		text.Draw(h.panel, g.Name, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += lineHeight
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label, face, panelPadding*2, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, color.RGBA{R: 160, G: 220, B: 160, A: 255})
			y += lineHeight
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-h.width-panelPadding), float64(panelPadding))
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding  = 12
	lineHeight    = 16
	labelBaseline = 10
)
