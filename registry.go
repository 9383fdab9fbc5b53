package pixfnt

import "errors"

import "github.com/embedui/pixfnt/internal"

// A [Registry] holds the fonts available to a rendering engine, keyed
// by name, and enforces the pixel-format contract: every registered
// font must be packed at the depth the registry was configured with.
// A font packed at any other depth is rejected with a
// [*ConfigMismatchError] and not retained, so the mismatch can never
// surface later, during glyph lookups.
//
// The expected usage is append-only registration at program startup
// and read-only lookups afterwards; the registry itself performs no
// synchronization.
type Registry struct {
	bitsPerPixel uint8
	fonts []*Font
	nameIndex map[string]int
}

// Creates a registry for the given active packing depth.
func NewRegistry(bitsPerPixel uint8) *Registry {
	if !internal.ValidBitsPerPixel(bitsPerPixel) {
		panic("registry bits per pixel must be 1, 2, 4 or 8")
	}
	return &Registry{
		bitsPerPixel: bitsPerPixel,
		nameIndex: make(map[string]int),
	}
}

// The packing depth this registry was configured with.
func (self *Registry) BitsPerPixel() uint8 { return self.bitsPerPixel }

// Adds a font to the registry. Fails with a [*ConfigMismatchError] if
// the font's declared packing depth doesn't match the registry's, or
// with a plain error if a font with the same name is already present.
func (self *Registry) Register(font *Font) error {
	fontBpp := font.Metrics().BitsPerPixel()
	if fontBpp != self.bitsPerPixel {
		return &ConfigMismatchError{
			FontName: font.Header().Name(),
			FontBitsPerPixel: fontBpp,
			ConfigBitsPerPixel: self.bitsPerPixel,
		}
	}

	name := font.Header().Name()
	_, alreadyRegistered := self.nameIndex[name]
	if alreadyRegistered {
		return errors.New("font '" + name + "' already registered")
	}
	self.nameIndex[name] = len(self.fonts)
	self.fonts = append(self.fonts, font)
	return nil
}

// Returns the font registered under the given name, if any.
func (self *Registry) Get(name string) (*Font, bool) {
	index, found := self.nameIndex[name]
	if !found { return nil, false }
	return self.fonts[index], true
}

func (self *Registry) NumFonts() int { return len(self.fonts) }

// Iterates all registered fonts in registration order.
func (self *Registry) Each(fn func(*Font)) {
	for _, font := range self.fonts {
		fn(font)
	}
}
