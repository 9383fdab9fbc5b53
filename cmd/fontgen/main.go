// fontgen is a commandline tool for generating pixfnt font resources
// from regular TTF/OTF fonts. It rasterizes every character code in
// the requested range at a fixed pixel size, quantizes the coverage to
// the requested packing depth and writes the resulting .pixfnt file:
//
//	fontgen -ttf TTHoves-Medium.ttf -size 20 -name "TTHoves Medium 20" -o tthoves_medium_20.pixfnt
//
// Codes without coverage in the source font leave their table slot
// empty; consumers of the resource see the fallback glyph for them.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/embedui/pixfnt/builder"
)

var (
	ttfName = flag.String("ttf", "", "TTF/OTF font file to rasterize")
	size    = flag.Float64("size", 20, "pixel size to rasterize at")
	dpi     = flag.Float64("dpi", 72, "resolution to rasterize at")
	name    = flag.String("name", "", "resource name (defaults to the file base name plus size)")
	first   = flag.Int("first", 32, "first character code of the glyph table")
	last    = flag.Int("last", 126, "last character code of the glyph table")
	bpp     = flag.Int("bpp", 4, "bits per pixel for the packed glyph rows (1, 2, 4 or 8)")
	outName = flag.String("o", "", "output file to create (defaults to the resource name + .pixfnt)")
)

func main() {
	log.SetFlags(0)
	flag.Parse()
	if *ttfName == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *first < 0 || *last > 255 || *first > *last {
		log.Fatalf("invalid character range [%d, %d]", *first, *last)
	}

	resourceName := *name
	if resourceName == "" {
		base := strings.TrimSuffix(filepath.Base(*ttfName), filepath.Ext(*ttfName))
		resourceName = fmt.Sprintf("%s %d", base, int(*size))
	}

	data, err := os.ReadFile(*ttfName)
	if err != nil {
		log.Fatal(err)
	}
	sfnt, err := opentype.Parse(data)
	if err != nil {
		log.Fatalf("parsing %s: %v", *ttfName, err)
	}
	face, err := opentype.NewFace(sfnt, &opentype.FaceOptions{
		Size:    *size,
		DPI:     *dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatalf("sizing %s: %v", *ttfName, err)
	}
	defer face.Close()

	fontBuilder := builder.New()
	if err := fontBuilder.SetName(resourceName); err != nil {
		log.Fatal(err)
	}
	if err := fontBuilder.SetBitsPerPixel(uint8(*bpp)); err != nil {
		log.Fatal(err)
	}
	if err := fontBuilder.SetRange(byte(*first), byte(*last)); err != nil {
		log.Fatal(err)
	}

	faceMetrics := face.Metrics()
	ascent, descent := faceMetrics.Ascent.Ceil(), faceMetrics.Descent.Ceil()
	height := ascent + descent
	if height <= 0 || height > 255 {
		log.Fatalf("line height %d out of range for a pixfnt resource", height)
	}

	var skipped int
	maxHeight := height
	for code := *first; code <= *last; code++ {
		dr, maskImage, maskPoint, advance, ok := face.Glyph(fixed.Point26_6{}, rune(code))
		if !ok {
			skipped++
			continue // slot left empty, falls back at use time
		}
		if advance.Ceil() > 255 || dr.Dx() > 255 || dr.Dy() > 255 {
			log.Fatalf("glyph for code %d exceeds resource limits", code)
		}
		glyphMask := image.NewAlpha(dr)
		draw.Draw(glyphMask, dr, maskImage, maskPoint, draw.Src)
		if err := fontBuilder.SetGlyph(byte(code), uint8(advance.Ceil()), glyphMask); err != nil {
			log.Fatalf("glyph for code %d: %v", code, err)
		}
		if dr.Dy() > maxHeight {
			maxHeight = dr.Dy()
		}
	}
	if maxHeight > 255 {
		log.Fatalf("max glyph height %d out of range for a pixfnt resource", maxHeight)
	}
	if err := fontBuilder.SetMetrics(uint8(height), uint8(maxHeight), uint8(descent)); err != nil {
		log.Fatal(err)
	}

	built, err := fontBuilder.Build()
	if err != nil {
		log.Fatal(err)
	}

	outPath := *outName
	if outPath == "" {
		outPath = strings.ReplaceAll(strings.ToLower(resourceName), " ", "_") + ".pixfnt"
	}
	out, err := os.Create(outPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := built.Export(out); err != nil {
		out.Close()
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf(
		"wrote %s: %d glyphs in range [%d, %d] (%d empty slots), %d bpp, metrics (%d, %d, %d)\n",
		outPath, fontBuilder.NumGlyphs(), *first, *last, skipped, *bpp, height, maxHeight, descent,
	)
}
