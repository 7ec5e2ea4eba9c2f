package chip8

// Display resolutions.
const (
	LowResWidth   = 64
	LowResHeight  = 32
	HighResWidth  = 128
	HighResHeight = 64

	// horizontalScrollStep is the pixel distance of the SCR and SCL
	// instructions.
	horizontalScrollStep = 4
)

// Frame is a copy of the framebuffer handed to the host.
type Frame struct {
	Width  int
	Height int

	// Pixels holds Width*Height values in row-major order.
	Pixels []bool

	// ScrollX is the horizontal scroll offset in pixels, applied by At.
	ScrollX int

	// RowStart and RowEnd are the inclusive range of rows changed since
	// the previous frame.
	RowStart int
	RowEnd   int
}

// At returns the pixel visible at the given position with the horizontal
// scroll offset applied. Coordinates wrap around the frame size.
func (f Frame) At(x, y int) bool {
	if f.Width == 0 || f.Height == 0 {
		return false
	}
	x = wrap(x-f.ScrollX, f.Width)
	y = wrap(y, f.Height)
	return f.Pixels[y*f.Width+x]
}

// display is a framebuffer sized for the largest resolution. All indexing
// uses the current logical width, which is also the row stride.
type display struct {
	pixels  [HighResWidth * HighResHeight]bool
	hiRes   bool
	scrollX int
	redraw  bool

	// dirtyMin > dirtyMax means no row changed
	dirtyMin int
	dirtyMax int
}

func (d *display) width() int {
	if d.hiRes {
		return HighResWidth
	}
	return LowResWidth
}

func (d *display) height() int {
	if d.hiRes {
		return HighResHeight
	}
	return LowResHeight
}

func (d *display) resetDirty() {
	d.dirtyMin = HighResHeight
	d.dirtyMax = -1
}

// markAll flags the complete frame for redraw.
func (d *display) markAll() {
	d.dirtyMin = 0
	d.dirtyMax = d.height() - 1
	d.redraw = true
}

func (d *display) markRow(y int) {
	d.dirtyMin = min(d.dirtyMin, y)
	d.dirtyMax = max(d.dirtyMax, y)
	d.redraw = true
}

func (d *display) clear() {
	d.pixels = [HighResWidth * HighResHeight]bool{}
	d.markAll()
}

// setHiRes switches the logical resolution. Pixels keep their coordinates,
// rows are moved to the new stride and pixels outside of the new resolution
// are dropped.
func (d *display) setHiRes(hiRes bool) {
	oldWidth, oldHeight := d.width(), d.height()
	d.hiRes = hiRes
	w, h := d.width(), d.height()

	var pixels [HighResWidth * HighResHeight]bool
	cols := min(oldWidth, w)
	for y := range min(oldHeight, h) {
		copy(pixels[y*w:y*w+cols], d.pixels[y*oldWidth:y*oldWidth+cols])
	}
	d.pixels = pixels
	d.scrollX = wrap(d.scrollX, w)
	d.markAll()
}

// toggle flips the pixel at the wrapped position and returns whether a set
// pixel was turned off.
func (d *display) toggle(x, y int) bool {
	w, h := d.width(), d.height()
	x = wrap(x, w)
	y = wrap(y, h)
	index := y*w + x
	erased := d.pixels[index]
	d.pixels[index] = !erased
	d.markRow(y)
	return erased
}

// scrollDown moves all rows down by n, the top rows are cleared.
func (d *display) scrollDown(n int) {
	w, h := d.width(), d.height()
	n = min(n, h)
	copy(d.pixels[n*w:h*w], d.pixels[:(h-n)*w])
	clear(d.pixels[:n*w])
	d.markAll()
}

// scrollUp moves all rows up by n, the bottom rows are cleared.
func (d *display) scrollUp(n int) {
	w, h := d.width(), d.height()
	n = min(n, h)
	copy(d.pixels[:(h-n)*w], d.pixels[n*w:h*w])
	clear(d.pixels[(h-n)*w : h*w])
	d.markAll()
}

// scrollHorizontal changes the horizontal scroll offset.
func (d *display) scrollHorizontal(delta int) {
	d.scrollX = wrap(d.scrollX+delta, d.width())
	d.markAll()
}

// take returns a copy of the visible framebuffer if it changed since the
// previous call and resets the change tracking.
func (d *display) take() (Frame, bool) {
	if !d.redraw {
		return Frame{}, false
	}

	w, h := d.width(), d.height()
	frame := Frame{
		Width:    w,
		Height:   h,
		Pixels:   make([]bool, w*h),
		ScrollX:  d.scrollX,
		RowStart: 0,
		RowEnd:   -1,
	}
	if d.dirtyMin <= d.dirtyMax {
		frame.RowStart = max(d.dirtyMin, 0)
		frame.RowEnd = min(d.dirtyMax, h-1)
	}
	copy(frame.Pixels, d.pixels[:w*h])

	d.redraw = false
	d.resetDirty()
	return frame, true
}

// TakeFrame returns the current frame if the display changed since the
// previous call. It is meant for a single consumer.
func (m *Machine) TakeFrame() (Frame, bool) {
	return m.display.take()
}

// wrap reduces value into [0, size).
func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}
