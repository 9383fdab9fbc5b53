// Package face adapts a [pixfnt.Font] to the standard
// [golang.org/x/image/font.Face] interface, so pixfnt resources can be
// used directly with [font.Drawer], [font.MeasureString] and any other
// consumer of that ecosystem.
package face

import "image"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/embedui/pixfnt"
import "github.com/embedui/pixfnt/mask"

var _ font.Face = (*Face)(nil)

// A [Face] wraps a [pixfnt.Font]. Unlike most faces, glyph resolution
// is total: codes without coverage draw the font's fallback glyph and
// the ok results are always true, mirroring the resource's own policy
// of never failing a lookup.
//
// Faces cache unpacked glyph masks and are not safe for concurrent
// use, per the [font.Face] contract. The underlying font is read-only
// and can back any number of faces.
type Face struct {
	font *pixfnt.Font
	masks map[int]*image.Alpha // lazily unpacked glyph masks
}

func New(fnt *pixfnt.Font) *Face {
	return &Face{ font: fnt, masks: make(map[int]*image.Alpha, 32) }
}

func (self *Face) Close() error { return nil }

// The wrapped font resource.
func (self *Face) Font() *pixfnt.Font { return self.font }

func (self *Face) Metrics() font.Metrics {
	metrics := self.font.Metrics()
	height  := fixed.I(int(metrics.Height()))
	descent := fixed.I(int(metrics.Baseline())) // baseline is measured from the line box bottom
	ascent  := height - descent
	return font.Metrics{
		Height: height,
		Ascent: ascent,
		Descent: descent,
		XHeight: ascent, // the resource carries no x-height or cap height
		CapHeight: ascent,
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

func (self *Face) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	glyph := self.font.Glyphs().Get(int(r))
	alpha := self.maskFor(int(r), glyph)
	x := dot.X.Floor() + glyph.BearingX()
	y := dot.Y.Floor() - glyph.BearingY()
	dr := image.Rect(x, y, x + glyph.Width(), y + glyph.Height())
	return dr, alpha, image.Point{}, fixed.I(glyph.Advance()), true
}

func (self *Face) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	glyph := self.font.Glyphs().Get(int(r))
	bounds := fixed.R(
		glyph.BearingX(),
		-glyph.BearingY(),
		glyph.BearingX() + glyph.Width(),
		-glyph.BearingY() + glyph.Height(),
	)
	return bounds, fixed.I(glyph.Advance()), true
}

func (self *Face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	return fixed.I(self.font.Glyphs().Get(int(r)).Advance()), true
}

// Bitmap UI fonts of this kind carry no kerning data.
func (self *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (self *Face) maskFor(code int, glyph pixfnt.Glyph) *image.Alpha {
	alpha, cached := self.masks[code]
	if cached { return alpha }
	alpha, err := mask.Unpack(glyph.PixData(), glyph.Width(), glyph.Height(), int(glyph.BitsPerPixel()))
	if err != nil { panic("broken font data: " + err.Error()) } // can't happen on validated fonts
	self.masks[code] = alpha
	return alpha
}
