package mask

import "image"
import "errors"

// Expands packed glyph pixel rows into an 8-bit alpha mask. The pix
// slice must hold exactly height rows of ceil(width*bpp/8) bytes, with
// the leftmost pixel of each row stored in the highest bits of its
// byte. Packed levels are scaled up to the full 0-255 alpha range.
func Unpack(pix []byte, width, height, bpp int) (*image.Alpha, error) {
	if bpp != 1 && bpp != 2 && bpp != 4 && bpp != 8 {
		return nil, errors.New("bits per pixel must be 1, 2, 4 or 8")
	}
	if width < 0 || height < 0 {
		return nil, errors.New("mask dimensions can't be negative")
	}
	stride := (width*bpp + 7) >> 3
	if len(pix) != stride*height {
		return nil, errors.New("packed data size doesn't match mask dimensions")
	}

	img := image.NewAlpha(image.Rect(0, 0, width, height))
	maxLevel := (1 << bpp) - 1
	pixelsPerByte := 8/bpp
	for y := 0; y < height; y++ {
		row := pix[y*stride : (y + 1)*stride]
		for x := 0; x < width; x++ {
			shift := (pixelsPerByte - 1 - (x % pixelsPerByte))*bpp
			level := int(row[x/pixelsPerByte] >> shift) & maxLevel
			img.Pix[y*img.Stride + x] = uint8((level*255 + maxLevel/2)/maxLevel)
		}
	}
	return img, nil
}
