package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Presenter receives a finished RGBA frame. Implementations must treat pix as
// read-only; the slice is owned by the presenter once handed over.
type Presenter interface {
	Present(pix []byte)
}

// PresenterFunc adapts an ordinary function to the Presenter interface.
type PresenterFunc func(pix []byte)

// Present calls f(pix).
func (f PresenterFunc) Present(pix []byte) { f(pix) }

// Sim defines the contract the host loop drives.
type Sim interface {
	Name() string
	Size() Size
	PixelSize() Size
	Reset(seed int64)
	Tick()
	PaintState(p Presenter)
}

// Stats is implemented by sims that track run counters for display.
type Stats interface {
	Generation() int
	Population() int
}
