//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter is a core.Presenter that uploads finished frames into an
// ebiten image and draws it onto the screen.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	dirty bool
}

// NewGridPainter allocates a painter for frames of w×h pixels.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h}
	if w > 0 && h > 0 {
		gp.img = ebiten.NewImage(w, h)
	}
	return gp
}

// Present uploads pix into the painter image. Frames of the wrong length are
// dropped.
func (gp *GridPainter) Present(pix []byte) {
	if gp.img == nil || len(pix) != 4*gp.w*gp.h {
		return
	}
	gp.img.WritePixels(pix)
	gp.dirty = true
}

// Blit draws the last presented frame onto dst, scaled by scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	if gp.img == nil || !gp.dirty {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
