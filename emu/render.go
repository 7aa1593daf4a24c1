package emu

import (
	"image"
	"image/color"
	"runtime"
	"sync"
)

// RenderFrame renders the snapshot into a new 256x240 frame. It always
// succeeds: every address computation wraps, so any structurally valid
// snapshot produces a full frame.
func (s *Snapshot) RenderFrame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	s.RenderFrameInto(img)
	return img
}

// RenderFrameInto renders the snapshot into an existing 256x240 RGBA
// image. Every pixel is a pure function of the snapshot, so scanlines are
// partitioned across workers that share nothing but the output buffer; a
// started render always runs to completion.
func (s *Snapshot) RenderFrameInto(img *image.RGBA) {
	workers := runtime.NumCPU()
	if workers > ScreenHeight {
		workers = ScreenHeight
	}

	band := (ScreenHeight + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < ScreenHeight; start += band {
		end := start + band
		if end > ScreenHeight {
			end = ScreenHeight
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			// Each worker reuses one sprite line buffer.
			var buf spriteLine
			for line := start; line < end; line++ {
				s.renderScanline(img, line, &buf)
			}
		}(start, end)
	}
	wg.Wait()
}

// renderScanline renders one scanline into the framebuffer.
func (s *Snapshot) renderScanline(img *image.RGBA, line int, buf *spriteLine) {
	s.renderSpriteLine(line, buf)

	pix := img.Pix
	offset := line * img.Stride

	for x := 0; x < ScreenWidth; x++ {
		c := s.pixelColor(x, line, buf)

		p := offset + x*4
		pix[p] = c.R
		pix[p+1] = c.G
		pix[p+2] = c.B
		pix[p+3] = 0xFF
	}
}

// pixelColor merges the background and sprite layers for one pixel.
// Resolution order: front sprite, opaque background, behind sprite
// (policy permitting), universal background color.
func (s *Snapshot) pixelColor(x, y int, buf *spriteLine) color.RGBA {
	if fp := buf.front[x]; fp.colorIndex != 0 {
		return s.Palette.spriteColor(fp.palette, fp.colorIndex)
	}

	palette, colorIndex := s.backgroundPixel(x, y)
	if colorIndex != 0 {
		return s.Palette.backgroundColor(palette, colorIndex)
	}

	if s.BehindPolicy == BehindShowsThroughTransparent {
		if bp := buf.behind[x]; bp.colorIndex != 0 {
			return s.Palette.spriteColor(bp.palette, bp.colorIndex)
		}
	}

	return s.Palette.universalColor()
}
