package texture

import (
	"bytes"
	"fmt"

	"github.com/goopsie/texcore/pkg/pixfmt"
)

// Layer is one mipmap level's worth of raw, still-encoded pixel data: a
// single (surface, face, mip, slice) entry from a container's layer table.
type Layer struct {
	Format pixfmt.Format
	Width  int
	Height int
	Data   []byte
}

// Valid reports whether l refers to a usable layer.
func (l *Layer) Valid() bool {
	return l != nil && pixfmt.Valid(l.Format) && l.Width > 0 && l.Height > 0 && l.Data != nil
}

// DataSize returns the number of bytes l.Data must contain, re-derived
// from format and dimensions on every call — the size is never cached
// separately from the fields that determine it.
func (l *Layer) DataSize() int {
	if l == nil {
		return 0
	}
	return pixfmt.DataSize(l.Format, l.Width, l.Height)
}

// Set installs format/width/height/data into l. When steal is true, l
// takes ownership of data directly (no copy); the caller must treat data
// as consumed. When steal is false, data is copied so the caller's slice
// remains independently usable.
func (l *Layer) Set(format pixfmt.Format, width, height int, data []byte, steal bool) error {
	want := pixfmt.DataSize(format, width, height)
	if len(data) != want {
		return fmt.Errorf("layer data size %d does not match %s %dx%d (want %d)", len(data), pixfmt.Name(format), width, height, want)
	}
	l.Format = format
	l.Width = width
	l.Height = height
	if steal {
		l.Data = data
	} else {
		l.Data = append([]byte(nil), data...)
	}
	return nil
}

// Steal returns l's data and invalidates l, transferring ownership to the
// caller. After Steal, l is semantically empty (Format==Invalid,
// Width==Height==0, Data==nil), the same donor-invalidating transfer the
// container types use.
func (l *Layer) Steal() []byte {
	data := l.Data
	l.Format = pixfmt.Invalid
	l.Width = 0
	l.Height = 0
	l.Data = nil
	return data
}

// Equal reports whether l and other describe byte-identical layers.
// An invalid layer is never equal to anything, including another invalid
// layer. Ownership of the underlying byte slices is irrelevant.
func (l *Layer) Equal(other *Layer) bool {
	if !l.Valid() || !other.Valid() {
		return false
	}
	return l.Format == other.Format &&
		l.Width == other.Width &&
		l.Height == other.Height &&
		bytes.Equal(l.Data, other.Data)
}
