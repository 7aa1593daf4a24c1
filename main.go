package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/emnes/cli"
	"github.com/user-none/emnes/emu"
)

func main() {
	statePath := flag.String("state", "", "path to save state file (required)")
	outPath := flag.String("out", "", "write the rendered frame as PNG and exit")
	behindHidden := flag.Bool("behind-hidden", false,
		"occlude behind-background sprites by transparent background pixels too")
	flag.Parse()

	if *statePath == "" {
		log.Fatal("State path is required. Usage: emnes -state <path>")
	}

	data, err := os.ReadFile(*statePath)
	if err != nil {
		log.Fatalf("Failed to read state: %v", err)
	}

	var snapshot emu.Snapshot
	if err := snapshot.Deserialize(data); err != nil {
		log.Fatalf("Failed to load state: %v", err)
	}

	if *behindHidden {
		snapshot.BehindPolicy = emu.BehindAlwaysHidden
	}

	if *outPath != "" {
		frame := snapshot.RenderFrame()

		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()

		if err := png.Encode(f, frame); err != nil {
			log.Fatalf("Failed to encode frame: %v", err)
		}
		return
	}

	ebiten.SetWindowSize(emu.ScreenWidth*2, emu.ScreenHeight*2)
	ebiten.SetWindowTitle(emu.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runner := cli.NewRunner(*statePath, &snapshot)
	if err := ebiten.RunGame(runner); err != nil {
		log.Fatal(err)
	}
}
