package pixfnt

import "github.com/embedui/pixfnt/internal"

const MaxFontDataSize = internal.MaxFontDataSize // check both total file size and after uncompressing without signature
const FormatVersion = internal.FormatVersion
