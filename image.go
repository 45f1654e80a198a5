package hunkicon

import (
	"errors"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// scanlinesToImage converts the raw filter prefixed scanlines produced by
// the renderer to an NRGBA image with min-point at (0, 0).
func scanlinesToImage(size int, raw []byte) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	rowLen := 1 + size*4

	for y := 0; y < size; y++ {
		copy(img.Pix[y*img.Stride:], raw[y*rowLen+1:(y+1)*rowLen])
	}
	return img
}

// imageToScanlines converts an NRGBA image back to the raw scanline layout
// expected by the PNG encoder, prefixing each row with a zero filter byte.
func imageToScanlines(img *image.NRGBA) []byte {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	rowLen := 1 + w*4
	raw := make([]byte, h*rowLen)

	for y := 0; y < h; y++ {
		row := raw[y*rowLen : (y+1)*rowLen]
		row[0] = 0
		copy(row[1:], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}
	return raw
}

// encodeImg encodes an image to a destination of type io.Writer.
func encodeImg(w io.Writer, format string, img *image.NRGBA) error {
	switch format {
	case "png":
		b := img.Bounds()
		return EncodePNG(w, b.Dx(), b.Dy(), imageToScanlines(img))
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return errors.New("unsupported image format")
	}
}

// resizeImg scales the icon to the given square size using Lanczos resampling.
func resizeImg(img *image.NRGBA, size int) *image.NRGBA {
	return imaging.Resize(img, size, size, imaging.Lanczos)
}
