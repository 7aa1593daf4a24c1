// Package cli provides a windowed viewer for rendered frames.
// It loads a save state, renders it once, and redraws the cached frame
// until the state file is reloaded.
package cli

import (
	"image"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	framebridge "github.com/user-none/emnes/bridge/ebiten"
	"github.com/user-none/emnes/emu"
)

// Runner displays the frame rendered from a save state file.
// R reloads the state file and re-renders; Escape quits.
type Runner struct {
	statePath string
	snapshot  *emu.Snapshot

	frame     *image.RGBA
	presenter *framebridge.Presenter
}

// NewRunner creates a runner around an already-loaded snapshot and
// renders its first frame.
func NewRunner(statePath string, snapshot *emu.Snapshot) *Runner {
	r := &Runner{
		statePath: statePath,
		snapshot:  snapshot,
		frame:     image.NewRGBA(image.Rect(0, 0, emu.ScreenWidth, emu.ScreenHeight)),
		presenter: framebridge.NewPresenter(),
	}
	r.snapshot.RenderFrameInto(r.frame)
	return r
}

// reload re-reads the state file and re-renders. A malformed file leaves
// the current snapshot and frame in place.
func (r *Runner) reload() {
	data, err := os.ReadFile(r.statePath)
	if err != nil {
		log.Printf("Warning: reload failed: %v", err)
		return
	}
	if err := r.snapshot.Deserialize(data); err != nil {
		log.Printf("Warning: reload failed: %v", err)
		return
	}
	r.snapshot.RenderFrameInto(r.frame)
}

// Update implements ebiten.Game.
func (r *Runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		r.reload()
	}
	return nil
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.presenter.DrawFrame(screen, r.frame)
}

// Layout implements ebiten.Game.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
