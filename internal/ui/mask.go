package ui

import (
	"image/color"
	"math"

	"pixlife/internal/core"
)

type neighborCounter interface {
	LiveNeighborCount(row, col int) int
}

// fillNeighborMask writes one RGBA pixel per cell into buf, tinted by how many
// of the cell's eight neighbours are alive. Cells with no live neighbours are
// left transparent.
func fillNeighborMask(buf []byte, size core.Size, counter neighborCounter, tint color.RGBA) {
	const (
		maxAlpha      = 150.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			base := (row*size.W + col) * 4
			n := counter.LiveNeighborCount(row, col)
			if n <= 0 {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
				continue
			}
			intensity := math.Min(float64(n)/8, 1)
			glow := glowBase + glowRange*math.Sqrt(intensity)
			buf[base+0] = scaleColorComponent(tint.R, glow)
			buf[base+1] = scaleColorComponent(tint.G, glow)
			buf[base+2] = scaleColorComponent(tint.B, glow)
			buf[base+3] = uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
		}
	}
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
