package ui

import (
	"image/color"
	"slices"
	"testing"

	"pixlife/internal/core"
	"pixlife/internal/sims/life"
)

type fixedCounter map[[2]int]int

func (f fixedCounter) LiveNeighborCount(row, col int) int { return f[[2]int{row, col}] }

func TestFillNeighborMask(t *testing.T) {
	size := core.Size{W: 3, H: 2}
	buf := make([]byte, 4*size.W*size.H)
	for i := range buf {
		buf[i] = 0xff
	}
	counts := fixedCounter{{0, 1}: 2, {1, 2}: 8}
	tint := color.RGBA{R: 200, G: 100, B: 50}

	fillNeighborMask(buf, size, counts, tint)

	alpha := func(row, col int) uint8 { return buf[(row*size.W+col)*4+3] }
	if alpha(0, 0) != 0 || alpha(1, 0) != 0 {
		t.Fatal("cells without neighbours should be transparent")
	}
	if alpha(0, 1) == 0 || alpha(0, 1) >= alpha(1, 2) {
		t.Fatalf("alpha should grow with neighbour count: 2->%d 8->%d", alpha(0, 1), alpha(1, 2))
	}
	full := (1*size.W + 2) * 4
	if buf[full] != 200 || buf[full+1] != 100 || buf[full+2] != 50 {
		t.Fatalf("fully surrounded cell should carry the full tint, got %v", buf[full:full+3])
	}
}

func TestStatusLines(t *testing.T) {
	g := life.New(4, 4)
	g.Clear()
	g.Set(1, 1, life.Alive)
	g.Tick()

	lines := statusLines(g, true)
	for _, want := range []string{"LIFE", "state: paused", "generation: 1", "population: 0", "width: 4"} {
		if !slices.Contains(lines, want) {
			t.Fatalf("status lines %q missing %q", lines, want)
		}
	}
	if statusLines(nil, false) != nil {
		t.Fatal("nil sim should produce no lines")
	}
}
