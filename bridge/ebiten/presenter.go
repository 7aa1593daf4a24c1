// Package ebiten provides an Ebiten-specific presenter for rendered frames.
package ebiten

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Presenter draws a rendered frame to an Ebiten screen, scaled to fit the
// window while preserving aspect ratio.
type Presenter struct {
	offscreen *ebiten.Image           // Offscreen buffer at native frame resolution
	drawOpts  ebiten.DrawImageOptions // Pre-allocated draw options to avoid per-frame allocation
}

// NewPresenter creates an empty presenter.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// DrawFrame copies the frame's pixels to the screen.
func (p *Presenter) DrawFrame(screen *ebiten.Image, frame *image.RGBA) {
	if frame == nil {
		return
	}

	nativeW := frame.Bounds().Dx()
	nativeH := frame.Bounds().Dy()
	if nativeW == 0 || nativeH == 0 {
		return
	}

	// Create or resize the offscreen buffer if needed
	if p.offscreen == nil ||
		p.offscreen.Bounds().Dx() != nativeW || p.offscreen.Bounds().Dy() != nativeH {
		p.offscreen = ebiten.NewImage(nativeW, nativeH)
	}

	p.offscreen.WritePixels(frame.Pix)

	// Calculate scaling to fit the window while preserving aspect ratio
	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()

	scaleX := float64(screenW) / float64(nativeW)
	scaleY := float64(screenH) / float64(nativeH)
	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}

	scaledW := float64(nativeW) * scale
	scaledH := float64(nativeH) * scale

	p.drawOpts.GeoM.Reset()
	p.drawOpts.GeoM.Scale(scale, scale)
	p.drawOpts.GeoM.Translate(
		(float64(screenW)-scaledW)/2,
		(float64(screenH)-scaledH)/2,
	)

	screen.DrawImage(p.offscreen, &p.drawOpts)
}
