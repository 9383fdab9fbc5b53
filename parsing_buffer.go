package pixfnt

import "io"
import "errors"
import "compress/gzip"

import "github.com/embedui/pixfnt/internal"

// creating a reusable buffer doesn't make much sense because
// then we would unnecessarily keep a tempBuff around, and the
// cost of parsing exceeds the cost of allocating a few KiB

type parsingBuffer struct {
	tempBuff []byte // size 1024, for temporary reads immediately copied to 'bytes'
	gzipReader *gzip.Reader
	fileType string

	bytes []byte
	index int // index of processed data within 'bytes'. unprocessed data == len(bytes) - index
	eof bool
}

func (self *parsingBuffer) NewError(details string) error {
	return errors.New(self.fileType + " parsing error: " + details)
}

func (self *parsingBuffer) InitBuffers() {
	self.tempBuff = make([]byte, 1024)
	self.bytes    = make([]byte, 0, 1024)
	self.index = 0
	self.eof = false
}

func (self *parsingBuffer) InitGzipReader(reader io.Reader) error {
	var err error
	self.gzipReader, err = gzip.NewReader(reader)
	return err
}

func (self *parsingBuffer) EnsureEOF() error {
	if self.eof { return nil }
	preLen := len(self.bytes)
	err := self.readMore()
	if err != nil { return err }
	if len(self.bytes) > preLen {
		return self.NewError("file continues beyond the expected end")
	}
	if !self.eof { panic("broken code") }
	return nil
}

// utility function called to read more data
func (self *parsingBuffer) readMore() error {
	for retries := 0; retries < 3; retries++ {
		// read and process read bytes
		n, err := self.gzipReader.Read(self.tempBuff)
		if n > 0 {
			self.bytes = internal.GrowSliceByN(self.bytes, n)
			if len(self.bytes) > MaxFontDataSize {
				return self.NewError("font data size exceeds limit")
			}
			k := copy(self.bytes[len(self.bytes) - n : ], self.tempBuff[ : n])
			if k != n { panic("broken code") }
		}

		// handle errors
		if err == io.EOF {
			self.eof = true
			return nil
		} else if err != nil {
			return err
		}

		// return if we have read something
		if n != 0 { return nil }
	}

	// fallback error case if repeated reads still don't lead us anywhere
	return self.NewError("repeated empty reads")
}

func (self *parsingBuffer) readUpTo(newIndex int) error {
	if newIndex <= self.index { panic("readUpTo() misuse") }
	for len(self.bytes) < newIndex {
		if self.eof {
			return self.NewError("premature end of file (or font offsets are wrong)")
		}
		err := self.readMore()
		if err != nil { return err }
	}
	self.index = newIndex
	return nil
}

func (self *parsingBuffer) AdvanceBytes(n int) error {
	if n < 0 { panic("AdvanceBytes(N) where N < 0") }
	if n == 0 { return nil }
	return self.readUpTo(self.index + n)
}

func (self *parsingBuffer) ReadUint32() (uint32, error) {
	index := self.index
	err := self.readUpTo(index + 4)
	if err != nil { return 0, err }
	return internal.DecodeUint32LE(self.bytes[index : ]), nil
}

func (self *parsingBuffer) ReadUint8() (uint8, error) {
	index := self.index
	err := self.readUpTo(index + 1)
	if err != nil { return 0, err }
	return self.bytes[index], nil
}

func (self *parsingBuffer) ReadShortStr() (string, error) {
	length, err := self.ReadUint8()
	if err != nil { return "", err }
	if length == 0 { return "", nil }
	index := self.index
	err = self.readUpTo(index + int(length))
	if err != nil { return "", err }
	return string(self.bytes[index : index + int(length)]), nil
}
