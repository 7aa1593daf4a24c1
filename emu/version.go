package emu

// Name and Version identify the core.
const (
	Name    = "emnes"
	Version = "0.1.0"
)
