// Package chunkfile implements Picture.Save/Load's on-disk format: a zstd
// compressed container with a small fixed header, adapted from the
// zstd archive reader/writer this module started from (same Header
// layout, same NewWriter/NewReader shape) and repurposed to frame a
// serialized Picture instead of an arbitrary opaque blob.
package chunkfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/DataDog/zstd"
)

// Magic identifies a texcore chunk file.
var Magic = [4]byte{0x54, 0x58, 0x43, 0x31} // "TXC1"

// HeaderSize is the binary size of Header.
const HeaderSize = 24

// DefaultCompressionLevel favours write speed; pictures compress well
// even at the fastest level.
const DefaultCompressionLevel = zstd.BestSpeed

// Header precedes the zstd-compressed payload.
type Header struct {
	Magic            [4]byte
	HeaderLength     uint32
	Length           uint64 // uncompressed size
	CompressedLength uint64 // compressed size
}

// NewHeader builds a header for the given uncompressed/compressed sizes.
func NewHeader(uncompressedSize, compressedSize uint64) *Header {
	return &Header{Magic: Magic, HeaderLength: HeaderSize, Length: uncompressedSize, CompressedLength: compressedSize}
}

// Validate checks the header for internal consistency.
func (h *Header) Validate() error {
	if h.Magic != Magic {
		return fmt.Errorf("chunkfile: invalid magic: expected %x, got %x", Magic, h.Magic)
	}
	if h.HeaderLength != HeaderSize {
		return fmt.Errorf("chunkfile: invalid header length: expected %d, got %d", HeaderSize, h.HeaderLength)
	}
	if h.Length == 0 {
		return fmt.Errorf("chunkfile: uncompressed size is zero")
	}
	return nil
}

// MarshalBinary encodes the header.
func (h *Header) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, h); err != nil {
		return nil, fmt.Errorf("chunkfile: marshal header: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes and validates the header.
func (h *Header) UnmarshalBinary(data []byte) error {
	buf := bytes.NewReader(data)
	if err := binary.Read(buf, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("chunkfile: unmarshal header: %w", err)
	}
	return h.Validate()
}

// Writer compresses a known-length payload to dst, rewriting the header
// with the final compressed size on Close. dst must support Seek, since
// the compressed size is only known after the stream is flushed.
type Writer struct {
	dst     io.WriteSeeker
	zWriter *zstd.Writer
	header  *Header
}

// NewWriter creates a Writer for a payload of uncompressedSize bytes.
func NewWriter(dst io.WriteSeeker, uncompressedSize uint64, level int) (*Writer, error) {
	w := &Writer{dst: dst, header: NewHeader(uncompressedSize, 0)}
	headerBytes, err := w.header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if _, err := dst.Write(headerBytes); err != nil {
		return nil, fmt.Errorf("chunkfile: write header: %w", err)
	}
	w.zWriter = zstd.NewWriterLevel(dst, level)
	return w, nil
}

// Write compresses and writes p.
func (w *Writer) Write(p []byte) (int, error) {
	return w.zWriter.Write(p)
}

// Close flushes the compressor and rewrites the header with the final
// compressed size.
func (w *Writer) Close() error {
	if err := w.zWriter.Close(); err != nil {
		return fmt.Errorf("chunkfile: close compressor: %w", err)
	}
	pos, err := w.dst.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("chunkfile: get position: %w", err)
	}
	w.header.CompressedLength = uint64(pos) - HeaderSize
	if _, err := w.dst.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("chunkfile: seek to start: %w", err)
	}
	headerBytes, err := w.header.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.dst.Write(headerBytes); err != nil {
		return fmt.Errorf("chunkfile: rewrite header: %w", err)
	}
	_, err = w.dst.Seek(pos, io.SeekStart)
	return err
}

// Encode is a one-shot Write+Close over data.
func Encode(dst io.WriteSeeker, data []byte, level int) error {
	w, err := NewWriter(dst, uint64(len(data)), level)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("chunkfile: write data: %w", err)
	}
	return w.Close()
}

// Reader decompresses a chunkfile payload read from r.
type Reader struct {
	header  *Header
	zReader io.ReadCloser
}

// NewReader reads and validates the header from r, then returns a reader
// positioned at the start of the decompressed payload.
func NewReader(r io.Reader) (*Reader, error) {
	headerBuf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		return nil, fmt.Errorf("chunkfile: read header: %w", err)
	}
	h := &Header{}
	if err := h.UnmarshalBinary(headerBuf); err != nil {
		return nil, err
	}
	return &Reader{header: h, zReader: zstd.NewReader(r)}, nil
}

// Length returns the uncompressed payload length.
func (r *Reader) Length() int { return int(r.header.Length) }

// Read reads decompressed bytes.
func (r *Reader) Read(p []byte) (int, error) { return r.zReader.Read(p) }

// Close closes the underlying decompressor.
func (r *Reader) Close() error { return r.zReader.Close() }

// DecodeAll reads and decompresses the full payload from r.
func DecodeAll(r io.Reader) ([]byte, error) {
	reader, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	data := make([]byte, reader.Length())
	n, err := io.ReadFull(reader, data)
	if err != nil {
		return nil, fmt.Errorf("chunkfile: read content: %w", err)
	}
	if n != reader.Length() {
		return nil, fmt.Errorf("chunkfile: incomplete read: expected %d, got %d", reader.Length(), n)
	}
	return data, nil
}
