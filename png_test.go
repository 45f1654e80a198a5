package hunkicon

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
)

func TestPNG_ChunkStreamShouldBeWellFormed(t *testing.T) {
	assert := assert.New(t)

	raw, err := g.Render(DefaultTheme)
	assert.NoError(err)

	var buf bytes.Buffer
	assert.NoError(EncodePNG(&buf, testSize, testSize, raw))

	data := buf.Bytes()
	assert.True(bytes.HasPrefix(data, pngMagic))

	// Walk the chunk stream past the signature, collecting the chunk tags
	// and verifying the framing of each one.
	var tags []string
	var idat []byte

	for off := len(pngMagic); off < len(data); {
		length := int(binary.BigEndian.Uint32(data[off : off+4]))
		tag := string(data[off+4 : off+8])
		payload := data[off+8 : off+8+length]

		// The checksum covers the chunk tag and its payload.
		crc := crc32.NewIEEE()
		crc.Write(data[off+4 : off+8+length])
		sum := binary.BigEndian.Uint32(data[off+8+length : off+12+length])
		assert.Equal(crc.Sum32(), sum, "chunk %s checksum mismatch", tag)

		switch tag {
		case "IHDR":
			assert.EqualValues(testSize, binary.BigEndian.Uint32(payload[0:4]))
			assert.EqualValues(testSize, binary.BigEndian.Uint32(payload[4:8]))
			// 8 bit RGBA samples, deflate compression, no filtering
			// heuristics and no interlacing.
			assert.Equal([]byte{8, 6, 0, 0, 0}, payload[8:13])
		case "IDAT":
			idat = append(idat, payload...)
		}

		tags = append(tags, tag)
		off += 12 + length
	}
	assert.Equal([]string{"IHDR", "IDAT", "IEND"}, tags)

	// Inflating the data chunk restores the raw scanlines untouched.
	zr, err := zlib.NewReader(bytes.NewReader(idat))
	assert.NoError(err)

	inflated, err := io.ReadAll(zr)
	assert.NoError(err)
	assert.NoError(zr.Close())
	assert.True(bytes.Equal(raw, inflated))
}

func TestPNG_EncoderShouldValidateTheScanlineBuffer(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer

	// The buffer length has to match the declared dimensions exactly.
	err := EncodePNG(&buf, 4, 4, make([]byte, 10))
	assert.Error(err)
	assert.Zero(buf.Len())

	assert.Error(EncodePNG(&buf, 0, 4, nil))
	assert.Error(EncodePNG(&buf, 4, -1, nil))

	// A single transparent pixel is the smallest valid input.
	assert.NoError(EncodePNG(&buf, 1, 1, make([]byte, 5)))
}
