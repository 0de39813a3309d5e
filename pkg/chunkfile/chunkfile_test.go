package chunkfile

import (
	"bytes"
	"io"
	"testing"
)

// seekBuf is a minimal in-memory io.WriteSeeker backed by a byte slice,
// used so tests can exercise Writer.Close's header-rewrite seek without
// touching the filesystem.
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

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("texcore chunk payload "), 500)

	dst := &seekBuf{}
	if err := Encode(dst, payload, DefaultCompressionLevel); err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := DecodeAll(bytes.NewReader(dst.data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("round trip mismatch: got %d bytes, want %d bytes", len(got), len(payload))
	}
}

func TestHeaderValidateRejectsBadMagic(t *testing.T) {
	h := &Header{HeaderLength: HeaderSize, Length: 10}
	if err := h.Validate(); err == nil {
		t.Error("expected validation error for zero magic")
	}
}
