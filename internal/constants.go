package internal

const MaxFontDataSize = (8 << 20) // check both total file size and after uncompressing without signature
const FormatVersion = 0x0000_0001

// Size of the fixed glyph blob header: width, height, advance,
// bearing x, bearing y. Packed pixel rows follow right after.
const GlyphHeaderSize = 5

// Slot table sentinel for codes without a dedicated glyph.
// Lookups on those slots resolve to the fallback glyph instead.
const EmptySlotOffset = 0xFFFF_FFFF

const MaxFontNameLen = 32

// Packing depths must divide 8 so pixel rows stay byte aligned.
func ValidBitsPerPixel(bpp uint8) bool {
	return bpp == 1 || bpp == 2 || bpp == 4 || bpp == 8
}

// Bytes per packed pixel row at the given width and depth.
func RowStride(width int, bpp uint8) int {
	return (width*int(bpp) + 7) >> 3
}

// Size in bytes of a full glyph blob (header plus pixel rows).
func GlyphBlobSize(width, height int, bpp uint8) int {
	return GlyphHeaderSize + height*RowStride(width, bpp)
}
