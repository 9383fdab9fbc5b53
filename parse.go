package pixfnt

import "io"
import "io/fs"
import "slices"
import "errors"

import "github.com/embedui/pixfnt/internal"

var errShortPayload = errors.New("font payload too short")

// Utility method for parsing from a fs.FS, like when using embed.
func ParseFS(filesys fs.FS, filename string) (*Font, error) {
	file, err := filesys.Open(filename)
	if err != nil { return nil, err }
	stat, err := file.Stat()
	if err != nil { return nil, err }
	if stat.Size() > MaxFontDataSize {
		return nil, errors.New("file size exceeds limit")
	}

	font, err := Parse(file)
	if err != nil { return font, err }
	return font, file.Close()
}

// Parses a pixfnt font resource from its container form: the 6-byte
// 'pixfnt' signature followed by the gzipped payload.
func Parse(reader io.Reader) (*Font, error) {
	var font Font
	var parser parsingBuffer
	parser.InitBuffers()
	parser.fileType = "pixfnt"

	// read signature first (this is not gzipped, so it's important)
	n, err := io.ReadFull(reader, parser.tempBuff[0 : 6])
	if err != nil || n != 6 {
		return nil, parser.NewError("failed to read file signature")
	}
	if !slices.Equal(parser.tempBuff[0 : 6], []byte{'p', 'i', 'x', 'f', 'n', 't'}) {
		return nil, parser.NewError("invalid signature")
	}

	err = parser.InitGzipReader(reader)
	if err != nil { return nil, parser.NewError(err.Error()) }

	// --- header ---
	_, err = parser.ReadUint32() // format version, checked by Validate
	if err != nil { return nil, err }
	_, err = parser.ReadShortStr() // font name, checked by Validate
	if err != nil { return nil, err }

	// --- metrics and glyph range ---
	font.offsetToMetrics = uint32(parser.index)
	err = parser.AdvanceBytes(6)
	if err != nil { return nil, err }
	first := parser.bytes[font.offsetToMetrics + 4]
	last  := parser.bytes[font.offsetToMetrics + 5]
	if first > last {
		return nil, parser.NewError("glyph range first code can't exceed last code")
	}
	numSlots := int(last) - int(first) + 1

	// --- glyph slot table ---
	font.offsetToSlots = uint32(parser.index)
	font.numSlots = uint16(numSlots)
	err = parser.AdvanceBytes(numSlots << 2)
	if err != nil { return nil, err }

	// --- glyph data section ---
	glyphDataLen, err := parser.ReadUint32()
	if err != nil { return nil, err }
	font.offsetToGlyphData = uint32(parser.index)
	font.glyphDataLen = glyphDataLen
	err = parser.AdvanceBytes(int(glyphDataLen))
	if err != nil { return nil, err }

	// ensure there's nothing left and validate
	err = parser.EnsureEOF()
	if err != nil { return nil, err }
	font.data = parser.bytes
	err = font.Validate(FmtDefault)
	if err != nil { return nil, parser.NewError(err.Error()) }
	return &font, nil
}

// Builds a [Font] directly from an uncompressed payload, the same
// byte layout [Parse] sees after stripping the signature and the gzip
// wrapping. This is the constructor used by the builder package and by
// statically embedded resources. The given slice is retained by the
// font and must never be modified afterwards.
func FontFromPayload(data []byte) (*Font, error) {
	if len(data) > MaxFontDataSize {
		return nil, errors.New("font data size exceeds limit")
	}
	if len(data) < 5 { return nil, errShortPayload }
	var font Font
	font.data = data

	nameLen := int(data[4])
	offsetToMetrics := 5 + nameLen
	if len(data) < offsetToMetrics + 6 { return nil, errShortPayload }
	first, last := data[offsetToMetrics + 4], data[offsetToMetrics + 5]
	if first > last {
		return nil, errors.New("glyph range first code can't exceed last code")
	}
	numSlots := int(last) - int(first) + 1

	offsetToSlots := offsetToMetrics + 6
	offsetToDataLen := offsetToSlots + (numSlots << 2)
	if len(data) < offsetToDataLen + 4 { return nil, errShortPayload }
	glyphDataLen := internal.DecodeUint32LE(data[offsetToDataLen : ])
	offsetToGlyphData := offsetToDataLen + 4
	if uint64(offsetToGlyphData) + uint64(glyphDataLen) != uint64(len(data)) {
		return nil, errors.New("payload size doesn't match glyph data section")
	}

	font.offsetToMetrics = uint32(offsetToMetrics)
	font.offsetToSlots = uint32(offsetToSlots)
	font.offsetToGlyphData = uint32(offsetToGlyphData)
	font.glyphDataLen = glyphDataLen
	font.numSlots = uint16(numSlots)

	err := font.Validate(FmtDefault)
	if err != nil { return nil, err }
	return &font, nil
}
