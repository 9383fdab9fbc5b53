package mask

import "image"

// Appends the packed pixel rows for the given alpha mask to the
// buffer, quantizing each alpha value to the nearest representable
// level at the given depth. The mask's bounds may be anywhere (glyph
// masks are usually placed relative to their baseline origin); only
// the bounds' width and height matter for the packing.
//
// Packing is the inverse of [Unpack], and an invalid depth is a
// programming error, so it panics instead of returning an error.
func AppendPacked(data []byte, mask *image.Alpha, bpp int) []byte {
	if bpp != 1 && bpp != 2 && bpp != 4 && bpp != 8 {
		panic("bits per pixel must be 1, 2, 4 or 8")
	}

	bounds := mask.Bounds()
	maxLevel := (1 << bpp) - 1
	pixelsPerByte := 8/bpp
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		var accum byte
		var pixelsInAccum int
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			value := int(mask.AlphaAt(x, y).A)
			level := byte((value*maxLevel + 127)/255)
			accum = (accum << bpp) | level
			pixelsInAccum += 1
			if pixelsInAccum == pixelsPerByte {
				data = append(data, accum)
				accum = 0
				pixelsInAccum = 0
			}
		}
		if pixelsInAccum > 0 { // pad the row's last byte with zero bits
			accum <<= bpp*(pixelsPerByte - pixelsInAccum)
			data = append(data, accum)
		}
	}
	return data
}
