package texture

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/goopsie/texcore/pkg/chunkfile"
	"github.com/goopsie/texcore/pkg/pixfmt"
)

const pictureIOVersion = 1

// Save serializes p to dst as a zstd-compressed chunk file (see
// pkg/chunkfile): a small fixed header, then the raw RGBA8 payload.
func (p *Picture) Save(dst io.WriteSeeker, level int) error {
	if !p.Valid() {
		return fmt.Errorf("picture is invalid")
	}
	payload := make([]byte, 16+len(p.Pixels)*4)
	binary.LittleEndian.PutUint32(payload[0:4], pictureIOVersion)
	binary.LittleEndian.PutUint32(payload[4:8], uint32(p.Width))
	binary.LittleEndian.PutUint32(payload[8:12], uint32(p.Height))
	binary.LittleEndian.PutUint32(payload[12:16], uint32(p.SrcFormat))
	copy(payload[16:], pixelsToBytes(p.Pixels))
	return chunkfile.Encode(dst, payload, level)
}

// Load replaces p's contents with the picture serialized in src.
func (p *Picture) Load(src io.Reader) error {
	payload, err := chunkfile.DecodeAll(src)
	if err != nil {
		return err
	}
	if len(payload) < 16 {
		return fmt.Errorf("picture payload too short: %d bytes", len(payload))
	}
	version := binary.LittleEndian.Uint32(payload[0:4])
	if version != pictureIOVersion {
		return fmt.Errorf("unsupported picture payload version %d", version)
	}
	width := int(binary.LittleEndian.Uint32(payload[4:8]))
	height := int(binary.LittleEndian.Uint32(payload[8:12]))
	srcFormat := pixfmt.Format(binary.LittleEndian.Uint32(payload[12:16]))
	pixelBytes := payload[16:]
	if len(pixelBytes) != width*height*4 {
		return fmt.Errorf("picture payload pixel data size %d does not match %dx%d", len(pixelBytes), width, height)
	}
	return p.SetBufferSteal(width, height, bytesToPixels(pixelBytes), srcFormat)
}
