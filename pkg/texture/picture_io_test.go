package texture

import (
	"bytes"
	"io"
	"testing"

	"github.com/goopsie/texcore/pkg/chunkfile"
	"github.com/goopsie/texcore/pkg/pixfmt"
)

type seekBuf struct {
	data []byte
	pos  int64
}

func (b *seekBuf) Write(p []byte) (int, error) {
	end := int(b.pos) + len(p)
	if end > len(b.data) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos:end], p)
	b.pos = int64(end)
	return len(p), nil
}

func (b *seekBuf) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		b.pos = offset
	case io.SeekCurrent:
		b.pos += offset
	case io.SeekEnd:
		b.pos = int64(len(b.data)) + offset
	}
	return b.pos, nil
}

func TestPictureSaveLoadRoundTrip(t *testing.T) {
	var p Picture
	if err := p.SetSize(6, 4, RGBA8{R: 10, G: 20, B: 30, A: 255}); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	p.SetPixel(3, 2, RGBA8{R: 255, G: 0, B: 128, A: 64})
	p.SrcFormat = pixfmt.R8G8B8A8

	dst := &seekBuf{}
	if err := p.Save(dst, chunkfile.DefaultCompressionLevel); err != nil {
		t.Fatalf("save: %v", err)
	}

	var loaded Picture
	if err := loaded.Load(bytes.NewReader(dst.data)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Width != p.Width || loaded.Height != p.Height {
		t.Fatalf("dimension mismatch: got %dx%d, want %dx%d", loaded.Width, loaded.Height, p.Width, p.Height)
	}
	if loaded.SrcFormat != p.SrcFormat {
		t.Errorf("SrcFormat mismatch: got %v, want %v", loaded.SrcFormat, p.SrcFormat)
	}
	for i := range p.Pixels {
		if loaded.Pixels[i] != p.Pixels[i] {
			t.Fatalf("pixel %d mismatch: got %+v, want %+v", i, loaded.Pixels[i], p.Pixels[i])
		}
	}
}
