package pixfnt

import "strconv"

// The error returned when registering a [Font] whose declared pixel
// packing depth doesn't match the depth the [Registry] was configured
// with. Rendering code compiled for one depth can't decode glyph rows
// packed at another, so the mismatch has to be caught at registration,
// before any glyph lookup is reachable.
type ConfigMismatchError struct {
	FontName string
	FontBitsPerPixel uint8
	ConfigBitsPerPixel uint8
}

func (self *ConfigMismatchError) Error() string {
	return "font '" + self.FontName + "' is packed at " +
		strconv.Itoa(int(self.FontBitsPerPixel)) + " bits per pixel, but the active configuration requires " +
		strconv.Itoa(int(self.ConfigBitsPerPixel))
}
