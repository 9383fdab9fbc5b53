package builder

import "image"
import "errors"

import "github.com/embedui/pixfnt"
import "github.com/embedui/pixfnt/mask"
import "github.com/embedui/pixfnt/internal"

const fontBuilderDefaultFontName = "unnamed"

var ErrBuildNoGlyphs = errors.New("can't build font with no glyphs")
var ErrBuildNoMetrics = errors.New("can't build font before SetMetrics()")
var errFontDataExceedsMax = errors.New("font data exceeds maximum size")

// An editable font under construction. Set the metrics and the glyph
// range, add glyphs from alpha masks and call [Font.Build]() to obtain
// the immutable [pixfnt.Font].
//
// This object should never replace a [pixfnt.Font] outside the edition
// context: it trades the compactness and O(1) lookups of the built
// resource for mutability.
type Font struct {
	fontName string
	bitsPerPixel uint8
	height uint8
	maxHeight uint8
	baseline uint8
	metricsSet bool
	firstCode byte
	lastCode byte
	glyphs map[byte]*glyphData
	fallback *glyphData
}

type glyphData struct {
	width uint8
	height uint8
	advance uint8
	bearingX int8
	bearingY int8
	pix []byte // packed rows
}

func (self *glyphData) appendBlob(buffer []byte) []byte {
	buffer = append(buffer, self.width, self.height, self.advance, uint8(self.bearingX), uint8(self.bearingY))
	return append(buffer, self.pix...)
}

// Creates an almost empty font builder. The glyph range defaults to
// the printable ascii range [32, 126] and the packing depth to 4 bits
// per pixel.
func New() *Font {
	return &Font{
		fontName: fontBuilderDefaultFontName,
		bitsPerPixel: 4,
		firstCode: 32,
		lastCode: 126,
		glyphs: make(map[byte]*glyphData, 32),
	}
}

// --- configuration ---

func (self *Font) SetName(name string) error {
	err := internal.ValidateFontName(name)
	if err != nil { return err }
	self.fontName = name
	return nil
}

func (self *Font) GetName() string { return self.fontName }

// Sets the line metrics: total line height, maximum glyph bounding box
// height and the baseline distance from the bottom of the line box.
func (self *Font) SetMetrics(height, maxHeight, baseline uint8) error {
	if height == 0 { return errors.New("height can't be zero") }
	if maxHeight < height { return errors.New("max height can't be smaller than height") }
	if baseline > height { return errors.New("baseline can't be bigger than height") }
	self.height = height
	self.maxHeight = maxHeight
	self.baseline = baseline
	self.metricsSet = true
	return nil
}

// Sets the packing depth for the glyph pixel rows. Must be configured
// before any glyph is added: glyphs are packed on the spot.
func (self *Font) SetBitsPerPixel(bpp uint8) error {
	if !internal.ValidBitsPerPixel(bpp) {
		return errors.New("bits per pixel must be 1, 2, 4 or 8")
	}
	if len(self.glyphs) > 0 || self.fallback != nil {
		return errors.New("can't change bits per pixel after adding glyphs")
	}
	self.bitsPerPixel = bpp
	return nil
}

func (self *Font) GetBitsPerPixel() uint8 { return self.bitsPerPixel }

// Sets the contiguous inclusive range of character codes covered by
// the glyph table. Fails if a glyph was already added outside of it.
func (self *Font) SetRange(first, last byte) error {
	if first > last { return errors.New("first code can't exceed last code") }
	for code := range self.glyphs {
		if code < first || code > last {
			return errors.New("can't shrink range below already added glyphs")
		}
	}
	self.firstCode = first
	self.lastCode = last
	return nil
}

func (self *Font) GetRange() (first, last byte) { return self.firstCode, self.lastCode }

// --- glyph edition ---

// Assigns a glyph to the given character code. The mask's bounds are
// interpreted relative to the glyph origin on the baseline: Min.X is
// the horizontal bearing and -Min.Y the ascent of the bitmap's top row
// over the baseline. The mask is quantized and packed immediately at
// the current bits per pixel.
func (self *Font) SetGlyph(code byte, advance uint8, glyphMask *image.Alpha) error {
	if code < self.firstCode || code > self.lastCode {
		return errors.New("glyph code outside the configured range")
	}
	glyph, err := self.encodeGlyph(advance, glyphMask)
	if err != nil { return err }
	self.glyphs[code] = glyph
	return nil
}

// Assigns the fallback glyph, used for every code the table doesn't
// cover. If never called, [Font.Build]() generates a filled box.
func (self *Font) SetFallback(advance uint8, glyphMask *image.Alpha) error {
	glyph, err := self.encodeGlyph(advance, glyphMask)
	if err != nil { return err }
	self.fallback = glyph
	return nil
}

func (self *Font) NumGlyphs() int { return len(self.glyphs) }

func (self *Font) encodeGlyph(advance uint8, glyphMask *image.Alpha) (*glyphData, error) {
	bounds := glyphMask.Bounds()
	if bounds.Dx() > 255 || bounds.Dy() > 255 {
		return nil, errors.New("glyph mask exceeds 255x255 bounds")
	}
	bearingX, topY := bounds.Min.X, bounds.Min.Y
	if bearingX < -128 || bearingX > 127 || -topY < -128 || -topY > 127 {
		return nil, errors.New("glyph mask placement exceeds bearing limits")
	}
	return &glyphData{
		width: uint8(bounds.Dx()),
		height: uint8(bounds.Dy()),
		advance: advance,
		bearingX: int8(bearingX),
		bearingY: int8(-topY),
		pix: mask.AppendPacked(nil, glyphMask, int(self.bitsPerPixel)),
	}, nil
}

// Default fallback: a filled box sitting on the baseline, the common
// "nonprintable glyph" of embedded UI fonts.
func (self *Font) stubFallback() *glyphData {
	boxHeight := self.height - self.baseline
	boxWidth := boxHeight/2 + 1
	img := image.NewAlpha(image.Rect(0, -int(boxHeight), int(boxWidth), 0))
	for i := 0; i < len(img.Pix); i++ {
		img.Pix[i] = 255
	}
	glyph, err := self.encodeGlyph(boxWidth + 1, img)
	if err != nil { panic("broken code") } // stub dimensions are always in bounds
	return glyph
}

// --- building ---

// Assembles the payload and returns the built immutable font. The
// builder remains usable afterwards; the font shares nothing with it.
func (self *Font) Build() (*pixfnt.Font, error) {
	if !self.metricsSet { return nil, ErrBuildNoMetrics }
	if len(self.glyphs) == 0 { return nil, ErrBuildNoGlyphs }
	fallback := self.fallback
	if fallback == nil { fallback = self.stubFallback() }

	// glyph data section, fallback blob always at offset zero
	glyphSection := fallback.appendBlob(nil)
	numSlots := int(self.lastCode) - int(self.firstCode) + 1
	slotOffsets := make([]uint32, numSlots)
	for slot := 0; slot < numSlots; slot++ {
		glyph, hasGlyph := self.glyphs[self.firstCode + byte(slot)]
		if !hasGlyph {
			slotOffsets[slot] = internal.EmptySlotOffset
			continue
		}
		slotOffsets[slot] = uint32(len(glyphSection))
		glyphSection = glyph.appendBlob(glyphSection)
	}

	// header, metrics and range
	data := make([]byte, 0, 1024)
	data = internal.AppendUint32LE(data, pixfnt.FormatVersion)
	data = internal.AppendShortString(data, self.fontName)
	data = append(data, self.bitsPerPixel, self.height, self.maxHeight, self.baseline, self.firstCode, self.lastCode)

	// slot table and glyph data section
	for _, offset := range slotOffsets {
		data = internal.AppendUint32LE(data, offset)
	}
	data = internal.AppendUint32LE(data, uint32(len(glyphSection)))
	data = append(data, glyphSection...)

	if len(data) > pixfnt.MaxFontDataSize { return nil, errFontDataExceedsMax }
	return pixfnt.FontFromPayload(data)
}
