package hunkicon

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
)

// The largest rendition a single ICO entry can describe.
const maxIcoSize = 256

// EncodeICO bundles multiple renditions of the icon into a Windows ICO
// container. Each rendition is scaled down from the source image and stored
// as a PNG entry, the compressed form Windows accepts since Vista. An entry
// size of 256 pixels is encoded as zero, per the ICONDIRENTRY convention.
func EncodeICO(w io.Writer, img *image.NRGBA, sizes []int) error {
	if len(sizes) == 0 {
		return errors.New("at least one icon size is required")
	}

	blobs := make([][]byte, 0, len(sizes))
	for _, size := range sizes {
		if size < 1 || size > maxIcoSize {
			return fmt.Errorf("icon size %d is outside the 1-%d range supported by the ICO container", size, maxIcoSize)
		}

		res := resizeImg(img, size)

		var buf bytes.Buffer
		if err := EncodePNG(&buf, size, size, imageToScanlines(res)); err != nil {
			return err
		}
		blobs = append(blobs, buf.Bytes())
	}

	var dir bytes.Buffer

	// ICONDIR header.
	binary.Write(&dir, binary.LittleEndian, uint16(0))          // reserved
	binary.Write(&dir, binary.LittleEndian, uint16(1))          // resource type: icon
	binary.Write(&dir, binary.LittleEndian, uint16(len(sizes))) // image count

	// One ICONDIRENTRY per rendition.
	offset := 6 + 16*len(sizes)
	for i, size := range sizes {
		dim := uint8(size)
		if size == maxIcoSize {
			dim = 0
		}

		dir.WriteByte(dim) // width
		dir.WriteByte(dim) // height
		dir.WriteByte(0)   // color palette size
		dir.WriteByte(0)   // reserved

		binary.Write(&dir, binary.LittleEndian, uint16(1))             // color planes
		binary.Write(&dir, binary.LittleEndian, uint16(32))            // bits per pixel
		binary.Write(&dir, binary.LittleEndian, uint32(len(blobs[i]))) // image data size
		binary.Write(&dir, binary.LittleEndian, uint32(offset))        // image data offset

		offset += len(blobs[i])
	}

	if _, err := w.Write(dir.Bytes()); err != nil {
		return err
	}

	for _, blob := range blobs {
		if _, err := w.Write(blob); err != nil {
			return err
		}
	}

	return nil
}

// icoSizes filters the requested renditions to the ones the ICO container
// can hold, also dropping the sizes exceeding the rendered icon itself.
func icoSizes(sizes []int, max int) []int {
	res := make([]int, 0, len(sizes))
	for _, s := range sizes {
		if s >= 1 && s <= maxIcoSize && s <= max {
			res = append(res, s)
		}
	}
	return res
}
