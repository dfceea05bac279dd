package inspect

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize covers the signature, the first chunk's length and type, and the
// width and height fields that follow them.
const HeaderSize = 24

// the 8 byte png signature, the chunk length and type after it are not checked
var signature = []byte("\x89PNG\r\n\x1a\n")

// ReadHeader reads up to HeaderSize bytes from r. A short file is not an error
// here, the returned slice is just shorter.
func ReadHeader(r io.Reader) ([]byte, error) {
	buf := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("failed to read png header: %w", err)
	}
	return buf[:n], nil
}

// ReadDimensions decodes the big-endian width and height at offsets 16 and 20.
func ReadDimensions(buf []byte) (uint32, uint32, error) {
	if len(buf) < len(signature) || !bytes.Equal(signature, buf[0:8]) {
		return 0, 0, ErrInvalidSignature
	}
	if len(buf) < HeaderSize {
		return 0, 0, fmt.Errorf("%w: got %d bytes, need %d", ErrTruncatedHeader, len(buf), HeaderSize)
	}

	return binary.BigEndian.Uint32(buf[16:20]), binary.BigEndian.Uint32(buf[20:24]), nil
}
