package main

import "github.com/fatih/color"

// Console colours; disabled by --no-color or when stdout is not a terminal
var (
	colorError = color.New(color.FgRed, color.Bold)
	colorPath  = color.New(color.FgGreen)
	colorMuted = color.New(color.FgWhite, color.Faint)
)
