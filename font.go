package pixfnt

import "errors"
import "strconv"

import "github.com/embedui/pixfnt/internal"

// A [Font] is a read-only object describing one fixed-size bitmap font:
// global line metrics, a dense table mapping a contiguous range of
// character codes to glyph bitmap blobs, and one designated fallback
// glyph for everything else. To create a [Font], use [Parse](),
// [ParseFS]() or [FontFromPayload]().
//
// Fonts are immutable after construction and hold all their data in a
// single byte arena; the struct itself only adds a few offsets into it.
// Concurrent readers never require synchronization.
//
// Font sections are exposed through gateway methods and differentiated
// types:
//  - Use [Font.Header]() to access information about the [FontHeader].
//  - Use [Font.Metrics]() to access information about the [FontMetrics].
//  - Use [Font.Glyphs]() to access information about the [FontGlyphs].
type Font struct {
	data []byte // uncompressed payload, starting from the format version

	// offsets to specific points at which critical data appears
	offsetToMetrics uint32
	offsetToSlots uint32
	offsetToGlyphData uint32
	glyphDataLen uint32
	numSlots uint16
}

type FmtValidation bool
const (
	FmtDefault FmtValidation = false // basic and inexpensive checks only
	FmtStrict  FmtValidation = true  // check everything that can be checked
)

func (self *Font) Validate(mode FmtValidation) error {
	var err error

	err = self.Header().Validate(mode)
	if err != nil { return err }
	err = self.Metrics().Validate(mode)
	if err != nil { return err }
	err = self.Glyphs().Validate(mode)
	if err != nil { return err }

	return nil
}

// --- data section gateways ---

func (self *Font) Header() *FontHeader { return (*FontHeader)(self) }
func (self *Font) Metrics() *FontMetrics { return (*FontMetrics)(self) }
func (self *Font) Glyphs() *FontGlyphs { return (*FontGlyphs)(self) }

// --- header section ---

type FontHeader Font
func (self *FontHeader) FormatVersion() uint32 { return internal.DecodeUint32LE(self.data[0 : 4]) }
func (self *FontHeader) Name() string {
	nameLen := int(self.data[4])
	return string(self.data[5 : 5 + nameLen])
}

func (self *FontHeader) Validate(mode FmtValidation) error {
	if self.FormatVersion() != FormatVersion { return errors.New("invalid FormatVersion") }
	return internal.ValidateFontName(self.Name())
}

// --- metrics section ---

type FontMetrics Font

// Bits used to encode each pixel's intensity in the packed glyph rows.
// This is a build contract, not a tuning knob: a consumer configured
// for a different depth must reject the font (see [Registry.Register]).
func (self *FontMetrics) BitsPerPixel() uint8 { return self.data[self.offsetToMetrics + 0] }

// Total line height in pixels. Always > 0.
func (self *FontMetrics) Height() uint8 { return self.data[self.offsetToMetrics + 1] }

// Maximum glyph bounding box height. Never below [FontMetrics.Height]().
func (self *FontMetrics) MaxHeight() uint8 { return self.data[self.offsetToMetrics + 2] }

// Distance in pixels between the text baseline and the bottom of the
// line box (room for descenders). Never exceeds [FontMetrics.Height]().
func (self *FontMetrics) Baseline() uint8 { return self.data[self.offsetToMetrics + 3] }

func (self *FontMetrics) Validate(mode FmtValidation) error {
	if !internal.ValidBitsPerPixel(self.BitsPerPixel()) {
		return errors.New("BitsPerPixel must be 1, 2, 4 or 8")
	}
	if self.Height() == 0 { return errors.New("Height can't be zero") }
	if self.MaxHeight() < self.Height() {
		return errors.New("MaxHeight can't be smaller than Height")
	}
	if self.Baseline() > self.Height() {
		return errors.New("Baseline can't be bigger than Height")
	}
	return nil
}

// --- glyphs section ---

type FontGlyphs Font

// The contiguous inclusive range of character codes covered by the
// glyph table. Codes outside the range map to the fallback glyph.
func (self *FontGlyphs) Range() (first, last byte) {
	return self.data[self.offsetToMetrics + 4], self.data[self.offsetToMetrics + 5]
}

// The glyph table length (last - first + 1). Unset slots within the
// table still count; they resolve to the fallback glyph on lookup.
func (self *FontGlyphs) Count() int {
	first, last := self.Range()
	return int(last) - int(first) + 1
}

// Returns the glyph for the given character code. The lookup is total:
// codes outside the supported range (negative values included) and
// codes whose table slot is unset resolve to [FontGlyphs.Fallback]().
// Missing coverage is a policy, not an error, so text rendering never
// has to deal with lookup failures.
func (self *FontGlyphs) Get(code int) Glyph {
	first, last := self.Range()
	if code >= int(first) && code <= int(last) {
		slot := uint32(code - int(first))
		offset := internal.DecodeUint32LE(self.data[self.offsetToSlots + (slot << 2) : ])
		if offset != internal.EmptySlotOffset {
			return self.glyphAt(offset)
		}
	}
	return self.Fallback()
}

// The glyph used for every code the table doesn't cover.
func (self *FontGlyphs) Fallback() Glyph { return self.glyphAt(0) }

// Reports whether the given code has its own glyph, without resolving
// it. [FontGlyphs.Get] never makes the distinction, so callers that
// care about coverage (e.g. to pick a different font) must ask here.
func (self *FontGlyphs) Covered(code int) bool {
	first, last := self.Range()
	if code < int(first) || code > int(last) { return false }
	slot := uint32(code - int(first))
	return internal.DecodeUint32LE(self.data[self.offsetToSlots + (slot << 2) : ]) != internal.EmptySlotOffset
}

func (self *FontGlyphs) glyphAt(offset uint32) Glyph {
	bpp := (*Font)(self).Metrics().BitsPerPixel()
	blob := self.data[self.offsetToGlyphData + offset : ]
	blobSize := internal.GlyphBlobSize(int(blob[0]), int(blob[1]), bpp)
	return Glyph{ data: blob[ : blobSize], bpp: bpp }
}

func (self *FontGlyphs) Validate(mode FmtValidation) error {
	first, last := self.Range()
	if first > last { return errors.New("glyph range first code can't exceed last code") }
	if self.Count() != int(self.numSlots) {
		return errors.New("glyph slot table size doesn't match declared range")
	}
	err := self.validateBlobAt(0, mode) // fallback glyph is mandatory
	if err != nil { return errors.New("fallback glyph: " + err.Error()) }

	// every non-empty slot must point at a well-formed blob, or
	// lookups could read past the font's arena
	for slot := uint32(0); slot < uint32(self.numSlots); slot++ {
		offset := internal.DecodeUint32LE(self.data[self.offsetToSlots + (slot << 2) : ])
		if offset == internal.EmptySlotOffset { continue }
		err := self.validateBlobAt(offset, mode)
		if err != nil {
			code := int(first) + int(slot)
			return errors.New("glyph for code " + strconv.Itoa(code) + ": " + err.Error())
		}
	}

	return nil
}

func (self *FontGlyphs) validateBlobAt(offset uint32, mode FmtValidation) error {
	if uint64(offset) + internal.GlyphHeaderSize > uint64(self.glyphDataLen) {
		return errors.New("blob offset beyond glyph data section")
	}
	blob := self.data[self.offsetToGlyphData + offset : ]
	bpp := (*Font)(self).Metrics().BitsPerPixel()
	blobSize := internal.GlyphBlobSize(int(blob[0]), int(blob[1]), bpp)
	if uint64(offset) + uint64(blobSize) > uint64(self.glyphDataLen) {
		return errors.New("blob exceeds glyph data section")
	}
	if mode == FmtStrict && blob[1] > (*Font)(self).Metrics().MaxHeight() {
		return errors.New("blob height exceeds font MaxHeight")
	}
	return nil
}
