package pixfnt

import "github.com/embedui/pixfnt/internal"

// A [Glyph] is a read-only view into one glyph bitmap blob of a [Font].
// The view aliases the font's own backing bytes, it's never a copy, so
// glyphs are cheap to obtain and pass around by value.
//
// A blob starts with a five byte header (width, height, advance,
// bearing x, bearing y) followed by the packed pixel rows. The packing
// depth is the font's [FontMetrics.BitsPerPixel](); use the mask package
// to expand the rows into an 8-bit alpha image.
type Glyph struct {
	data []byte // blob bytes: fixed header plus packed pixel rows
	bpp uint8
}

// Width of the glyph bitmap, in pixels.
func (self Glyph) Width() int { return int(self.data[0]) }

// Height of the glyph bitmap, in pixels.
func (self Glyph) Height() int { return int(self.data[1]) }

// Horizontal advance from this glyph's origin to the next one, in pixels.
func (self Glyph) Advance() int { return int(self.data[2]) }

// Horizontal offset from the glyph origin to the left edge of the bitmap.
func (self Glyph) BearingX() int { return int(int8(self.data[3])) }

// Distance from the baseline up to the top row of the bitmap.
func (self Glyph) BearingY() int { return int(int8(self.data[4])) }

// Bits per pixel used to pack this glyph's rows.
func (self Glyph) BitsPerPixel() uint8 { return self.bpp }

// Bytes per packed pixel row.
func (self Glyph) RowStride() int {
	return internal.RowStride(self.Width(), self.bpp)
}

// The raw blob bytes, header included. The returned slice aliases the
// font's data and must not be modified.
func (self Glyph) Data() []byte { return self.data }

// The packed pixel rows, without the header. The returned slice
// aliases the font's data and must not be modified.
func (self Glyph) PixData() []byte { return self.data[internal.GlyphHeaderSize : ] }
