package mask

import "testing"
import "bytes"
import "image"
import "image/color"
import "math/rand"

func TestUnpackKnownPattern(t *testing.T) {
	// 3x2 mask at 4bpp, first pixel of each row in the high nibble
	// row 0: levels 15, 0, 8
	// row 1: levels  0, 15, 15
	pix := []byte{0xF0, 0x80, 0x0F, 0xF0}
	img, err := Unpack(pix, 3, 2, 4)
	if err != nil { t.Fatal(err) }

	expected := []uint8{255, 0, 136, 0, 255, 255}
	for i, value := range expected {
		if img.Pix[i] != value {
			t.Fatalf("pixel #%d should be %d, but have %d instead", i, value, img.Pix[i])
		}
	}
}

func TestUnpackErrors(t *testing.T) {
	_, err := Unpack([]byte{0xFF}, 1, 1, 3)
	if err == nil { t.Fatalf("expected error on invalid bits per pixel") }
	_, err = Unpack([]byte{0xFF, 0x00}, 3, 1, 4) // stride should be 2, len is ok, width 3 needs 2 bytes
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	_, err = Unpack([]byte{0xFF}, 3, 1, 4)
	if err == nil { t.Fatalf("expected error on packed data size mismatch") }
	_, err = Unpack(nil, 0, 0, 4)
	if err != nil { t.Fatalf("unexpected error on empty mask: %s", err) }
}

func TestAppendPackedQuantization(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 2, 1))
	img.SetAlpha(0, 0, color.Alpha{100}) // nearest 4bpp level is 6
	img.SetAlpha(1, 0, color.Alpha{255})
	data := AppendPacked(nil, img, 4)
	if !bytes.Equal(data, []byte{0x6F}) {
		t.Fatalf("expected packed bytes [6F], got %X", data)
	}
}

func TestAppendPackedOffsetRect(t *testing.T) {
	// glyph masks are placed relative to the baseline origin, so the
	// bounds usually start at negative coordinates
	img := image.NewAlpha(image.Rect(-2, -3, 1, 0))
	img.SetAlpha(-2, -3, color.Alpha{255})
	img.SetAlpha( 0, -1, color.Alpha{255})
	data := AppendPacked(nil, img, 4)
	if !bytes.Equal(data, []byte{0xF0, 0x00, 0x00, 0x00, 0x00, 0xF0}) {
		t.Fatalf("unexpected packed bytes %X", data)
	}
}

func TestRngRoundTrip(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 5, 4))

	// run test N times with random 4bpp-exact values
	for i := 0; i < 222; i++ {
		for j := 0; j < len(img.Pix); j++ {
			img.Pix[j] = uint8(rand.Intn(16))*17 // multiples of 17 survive 4bpp quantization
		}

		data := AppendPacked(nil, img, 4)
		back, err := Unpack(data, 5, 4, 4)
		if err != nil { t.Fatal(err) }
		if !bytes.Equal(back.Pix, img.Pix) {
			t.Fatalf("round trip mismatch:\n>> (original) %v\n>> (unpacked) %v", img.Pix, back.Pix)
		}
	}
}
