package inspect

import "errors"

var (
	// ErrInvalidSignature is returned when the first 8 bytes are not the PNG signature.
	ErrInvalidSignature = errors.New("not a png file")

	// ErrTruncatedHeader is returned when the signature matches but the file ends
	// before the width and height fields.
	ErrTruncatedHeader = errors.New("truncated png header")
)
