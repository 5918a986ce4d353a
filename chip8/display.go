package chip8

const (
	/// DisplayWidth and DisplayHeight are the framebuffer dimensions
	/// in pixels.
	///
	DisplayWidth  = 64
	DisplayHeight = 32
)

/// Display is the 64x32 monochrome framebuffer. Pixels are stored packed,
/// MSB first; pixel (0,0) is bit 0x80 of byte 0. Callers address it only
/// by (x, y) coordinates, which wrap on both axes.
///
type Display struct {
	bits [DisplayWidth * DisplayHeight / 8]byte
}

/// Clear turns every pixel off.
///
func (d *Display) Clear() {
	d.bits = [DisplayWidth * DisplayHeight / 8]byte{}
}

/// Pixel reports whether the pixel at (x, y) is on. Coordinates wrap.
///
func (d *Display) Pixel(x, y int) bool {
	i := index(x, y)

	return d.bits[i>>3]&(0x80>>uint(i&7)) != 0
}

/// SetPixel turns the pixel at (x, y) on. Coordinates wrap.
///
func (d *Display) SetPixel(x, y int) {
	i := index(x, y)

	d.bits[i>>3] |= 0x80 >> uint(i&7)
}

/// Draw composites a sprite onto the grid at origin (x, y). Each byte is
/// one row, drawn MSB leftmost, and both axes wrap per pixel rather than
/// clipping. A bit landing on a lit pixel leaves it lit instead of
/// toggling it off, so a draw never extinguishes a pixel.
///
func (d *Display) Draw(sprite []byte, x, y byte) {
	for r, row := range sprite {
		for c := 0; c < 8; c++ {
			if row&(0x80>>uint(c)) == 0 {
				continue
			}

			px := int(x) + c
			py := int(y) + r

			if !d.Pixel(px, py) {
				d.SetPixel(px, py)
			}
		}
	}
}

/// index maps wrapped (x, y) coordinates to a pixel index. Both
/// dimensions are powers of two, so wrapping is a mask.
///
func index(x, y int) int {
	x &= DisplayWidth - 1
	y &= DisplayHeight - 1

	return y*DisplayWidth + x
}
