package inspect

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Kind is the outcome of checking one path.
type Kind int

const (
	Resolved Kind = iota
	NotFound
	InvalidSignature
	ReadFailed
)

func (k Kind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case NotFound:
		return "not_found"
	case InvalidSignature:
		return "invalid_signature"
	case ReadFailed:
		return "read_failed"
	}
	return "unknown"
}

// Result holds everything needed to print one output line. Width and Height
// are only meaningful when Kind is Resolved, Err only when Kind is ReadFailed.
type Result struct {
	Path   string
	Kind   Kind
	Width  uint32
	Height uint32
	Err    error
}

func (r Result) String() string {
	switch r.Kind {
	case Resolved:
		return fmt.Sprintf("%s: %dx%d", r.Path, r.Width, r.Height)
	case NotFound:
		return fmt.Sprintf("%s: Not found", r.Path)
	case InvalidSignature:
		return fmt.Sprintf("%s: Not a valid PNG", r.Path)
	default:
		return fmt.Sprintf("%s: Error reading resolution - %v", r.Path, r.Err)
	}
}

// Check resolves relPath against baseDir and reports the png resolution of the
// file there. It never panics and never returns an error: every failure ends
// up in the returned Result. An absolute relPath is used as-is.
//
// Only a missing file is NotFound. Any other stat failure, such as a parent
// directory without search permission, is ReadFailed.
func Check(baseDir, relPath string) Result {
	fullPath := resolve(baseDir, relPath)

	if _, err := os.Stat(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Path: relPath, Kind: NotFound}
		}
		return Result{Path: relPath, Kind: ReadFailed, Err: err}
	}

	width, height, err := readFile(fullPath)
	return newResult(relPath, width, height, err)
}

func resolve(baseDir, relPath string) string {
	if filepath.IsAbs(relPath) {
		return relPath
	}
	return filepath.Join(baseDir, relPath)
}

func readFile(fullPath string) (uint32, uint32, error) {
	f, err := os.Open(fullPath)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	return decode(f)
}

func decode(r io.Reader) (uint32, uint32, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return 0, 0, err
	}

	return ReadDimensions(header)
}

func newResult(path string, width, height uint32, err error) Result {
	res := Result{Path: path}
	switch {
	case err == nil:
		res.Kind = Resolved
		res.Width, res.Height = width, height
	case errors.Is(err, ErrInvalidSignature):
		res.Kind = InvalidSignature
	default:
		res.Kind = ReadFailed
		res.Err = err
	}
	return res
}
