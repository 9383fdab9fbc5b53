package pixfnt

import "io"
import "compress/gzip"

// Serializes the font into its container form: the 6-byte 'pixfnt'
// signature followed by the gzipped payload. The output of Export can
// be read back with [Parse].
func (self *Font) Export(writer io.Writer) error {
	_, err := writer.Write([]byte{'p', 'i', 'x', 'f', 'n', 't'})
	if err != nil { return err }

	gzipWriter := gzip.NewWriter(writer)
	_, err = gzipWriter.Write(self.data)
	if err != nil { return err }
	return gzipWriter.Close()
}
