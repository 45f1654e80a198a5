package hunkicon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zlib"
)

// pngMagic is the eight byte signature opening every PNG stream.
var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// EncodePNG writes the raw scanlines as a minimal PNG stream: an IHDR chunk
// describing an 8 bit RGBA image, a single IDAT chunk holding the zlib
// compressed scanlines and the closing IEND chunk. The scanlines are expected
// row by row, each row prefixed with its PNG filter byte.
func EncodePNG(w io.Writer, width, height int, raw []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image dimensions: %dx%d", width, height)
	}
	if want := height * (1 + width*4); len(raw) != want {
		return fmt.Errorf("invalid scanline buffer length: got %d, expected %d", len(raw), want)
	}

	if _, err := w.Write(pngMagic); err != nil {
		return err
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // color type: RGBA
	// The compression, filter and interlace methods stay zero.
	if err := writeChunk(w, "IHDR", ihdr); err != nil {
		return err
	}

	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, zlib.BestCompression)
	if err != nil {
		return err
	}
	if _, err := zw.Write(raw); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}

	if err := writeChunk(w, "IDAT", idat.Bytes()); err != nil {
		return err
	}
	return writeChunk(w, "IEND", nil)
}

// writeChunk writes a single PNG chunk: the big endian payload length,
// the four byte chunk tag, the payload itself and the CRC-32 checksum
// computed over the tag and the payload.
func writeChunk(w io.Writer, tag string, data []byte) error {
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(len(data)))
	copy(header[4:], tag)

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	crc := crc32.NewIEEE()
	crc.Write(header[4:])
	crc.Write(data)

	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())

	_, err := w.Write(sum[:])
	return err
}
