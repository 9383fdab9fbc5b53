package builder

import "testing"
import "bytes"
import "image"
import "image/color"

import "github.com/google/go-cmp/cmp"

import "github.com/embedui/pixfnt"
import "github.com/embedui/pixfnt/mask"

func TestBasicFontBuild(t *testing.T) {
	// see that an unconfigured build results in ErrBuildNoMetrics
	builder := New()
	_, err := builder.Build()
	if err != ErrBuildNoMetrics {
		t.Fatalf("expected ErrBuildNoMetrics on emptyFontBuilder.Build(), but got '%v'", err)
	}

	// see that a glyphless build results in ErrBuildNoGlyphs
	err = builder.SetMetrics(20, 20, 4)
	if err != nil {
		t.Fatalf("unexpected SetMetrics() error: %s", err)
	}
	_, err = builder.Build()
	if err != ErrBuildNoGlyphs {
		t.Fatalf("expected ErrBuildNoGlyphs on glyphless Build(), but got '%v'", err)
	}

	// configuration checks and confirmations
	if builder.GetName() != fontBuilderDefaultFontName {
		t.Fatalf("expected default name '%s', got '%s'", fontBuilderDefaultFontName, builder.GetName())
	}
	err = builder.SetName("TTHoves Medium 20")
	if err != nil {
		t.Fatalf("unexpected SetName() error: %s", err)
	}
	if builder.GetBitsPerPixel() != 4 {
		t.Fatalf("expected default bits per pixel to be 4, got %d", builder.GetBitsPerPixel())
	}
	first, last := builder.GetRange()
	if first != 32 || last != 126 {
		t.Fatalf("expected default range (32, 126), got (%d, %d)", first, last)
	}

	// add a couple glyphs to the font
	space := image.NewAlpha(image.Rect(0, 0, 0, 0))
	err = builder.SetGlyph(' ', 5, space)
	if err != nil {
		t.Fatalf("unexpected SetGlyph() error: %s", err)
	}

	letterA := image.NewAlpha(image.Rect(0, -4, 3, 0)) // A-ish wedge
	letterA.SetAlpha(1, -4, color.Alpha{255})
	letterA.SetAlpha(0, -3, color.Alpha{255})
	letterA.SetAlpha(2, -3, color.Alpha{255})
	letterA.SetAlpha(0, -2, color.Alpha{255})
	letterA.SetAlpha(1, -2, color.Alpha{255})
	letterA.SetAlpha(2, -2, color.Alpha{255})
	letterA.SetAlpha(0, -1, color.Alpha{255})
	letterA.SetAlpha(2, -1, color.Alpha{255})
	err = builder.SetGlyph('A', 4, letterA)
	if err != nil {
		t.Fatalf("unexpected SetGlyph() error: %s", err)
	}
	if builder.NumGlyphs() != 2 {
		t.Fatalf("expected NumGlyphs() to return 2, got %d", builder.NumGlyphs())
	}

	// glyphs are packed on the spot, so depth changes must be rejected now
	err = builder.SetBitsPerPixel(8)
	if err == nil {
		t.Fatalf("expected SetBitsPerPixel() to fail after adding glyphs")
	}

	// check that the font is built without errors
	font, err := builder.Build()
	if err != nil {
		t.Fatalf("unexpected Build() error: %s", err)
	}

	// compare built font data with the builder configuration
	if font.Header().FormatVersion() != pixfnt.FormatVersion {
		t.Fatalf("expected format version %d, got %d instead", pixfnt.FormatVersion, font.Header().FormatVersion())
	}
	if font.Header().Name() != "TTHoves Medium 20" {
		t.Fatalf("expected font name 'TTHoves Medium 20', got '%s' instead", font.Header().Name())
	}
	metrics := font.Metrics()
	if metrics.Height() != 20 || metrics.MaxHeight() != 20 || metrics.Baseline() != 4 {
		t.Fatalf(
			"expected metrics (20, 20, 4), got (%d, %d, %d) instead",
			metrics.Height(), metrics.MaxHeight(), metrics.Baseline(),
		)
	}
	if metrics.BitsPerPixel() != 4 {
		t.Fatalf("expected 4 bits per pixel, got %d instead", metrics.BitsPerPixel())
	}
	first, last = font.Glyphs().Range()
	if first != 32 || last != 126 {
		t.Fatalf("expected range (32, 126), got (%d, %d) instead", first, last)
	}
	if font.Glyphs().Count() != 95 {
		t.Fatalf("expected glyph table length 95, got %d instead", font.Glyphs().Count())
	}

	// covered glyphs must come back with their own data
	glyph := font.Glyphs().Get('A')
	if glyph.Width() != 3 || glyph.Height() != 4 {
		t.Fatalf("expected glyph 'A' to be 3x4, got %dx%d instead", glyph.Width(), glyph.Height())
	}
	if glyph.Advance() != 4 || glyph.BearingX() != 0 || glyph.BearingY() != 4 {
		t.Fatalf(
			"unexpected glyph 'A' placement (advance %d, bearings %d, %d)",
			glyph.Advance(), glyph.BearingX(), glyph.BearingY(),
		)
	}
	unpacked, err := mask.Unpack(glyph.PixData(), glyph.Width(), glyph.Height(), int(glyph.BitsPerPixel()))
	if err != nil {
		t.Fatalf("unexpected Unpack() error: %s", err)
	}
	diff := cmp.Diff(letterA.Pix, unpacked.Pix)
	if diff != "" {
		t.Fatalf("glyph 'A' mask changed through build (-built +unpacked):\n%s", diff)
	}

	// uncovered codes must resolve to the fallback stub box
	fallback := font.Glyphs().Fallback()
	uncovered := font.Glyphs().Get('B')
	if !bytes.Equal(uncovered.Data(), fallback.Data()) {
		t.Fatalf("expected uncovered code to resolve to the fallback glyph")
	}
	if fallback.Width() == 0 || fallback.Height() != 16 {
		t.Fatalf("expected stub fallback box of height 16, got %dx%d", fallback.Width(), fallback.Height())
	}

	// export the font and parse it again to see that the data is consistent
	var buffer bytes.Buffer
	err = font.Export(&buffer)
	if err != nil {
		t.Fatalf("unexpected Font.Export() error: %s", err)
	}

	reFont, err := pixfnt.Parse(&buffer)
	if err != nil {
		t.Fatalf("unexpected Parse() error: %s", err)
	}
	var reExport, export bytes.Buffer
	err = font.Export(&export)
	if err != nil { t.Fatal(err) }
	err = reFont.Export(&reExport)
	if err != nil { t.Fatal(err) }
	if !bytes.Equal(export.Bytes(), reExport.Bytes()) {
		t.Fatalf("after exporting and re-parsing, font data changed")
	}
	if err := reFont.Validate(pixfnt.FmtStrict); err != nil {
		t.Fatalf("unexpected strict validation error after re-parse: %s", err)
	}
}

func TestBuilderRangeAndDepth(t *testing.T) {
	builder := New()
	err := builder.SetMetrics(8, 8, 2)
	if err != nil { t.Fatal(err) }

	// depth can be changed while no glyph was added
	err = builder.SetBitsPerPixel(2)
	if err != nil {
		t.Fatalf("unexpected SetBitsPerPixel() error: %s", err)
	}
	err = builder.SetRange('0', '9')
	if err != nil {
		t.Fatalf("unexpected SetRange() error: %s", err)
	}
	err = builder.SetRange('9', '0')
	if err == nil {
		t.Fatalf("expected SetRange() to reject inverted ranges")
	}

	// glyphs outside the configured range must be rejected
	dot := image.NewAlpha(image.Rect(0, -1, 1, 0))
	dot.SetAlpha(0, -1, color.Alpha{255})
	err = builder.SetGlyph('A', 2, dot)
	if err == nil {
		t.Fatalf("expected SetGlyph() to reject codes outside the range")
	}
	err = builder.SetGlyph('7', 2, dot)
	if err != nil {
		t.Fatalf("unexpected SetGlyph() error: %s", err)
	}

	// shrinking the range below added glyphs must be rejected
	err = builder.SetRange('0', '5')
	if err == nil {
		t.Fatalf("expected SetRange() to reject shrinking below added glyphs")
	}

	font, err := builder.Build()
	if err != nil {
		t.Fatalf("unexpected Build() error: %s", err)
	}
	if font.Metrics().BitsPerPixel() != 2 {
		t.Fatalf("expected 2 bits per pixel, got %d", font.Metrics().BitsPerPixel())
	}
	if !font.Glyphs().Covered('7') || font.Glyphs().Covered('6') {
		t.Fatalf("unexpected coverage report for the built font")
	}
}
