package hunkicon

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	_ "image/png"
)

func TestImage_ScanlineConversionShouldRoundTrip(t *testing.T) {
	assert := assert.New(t)

	raw, err := g.Render(DarkTheme)
	assert.NoError(err)

	img := scanlinesToImage(testSize, raw)
	assert.Equal(image.Rect(0, 0, testSize, testSize), img.Bounds())
	assert.True(bytes.Equal(raw, imageToScanlines(img)))
}

func TestImage_ScanlineConversionShouldHonorTheStride(t *testing.T) {
	assert := assert.New(t)

	// A sub-image shares the pixel buffer of its parent, keeping the
	// parent stride, so the conversion cannot assume contiguous rows.
	parent := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := range parent.Pix {
		parent.Pix[i] = uint8(i * 7)
	}

	sub, ok := parent.SubImage(image.Rect(2, 2, 6, 6)).(*image.NRGBA)
	assert.True(ok)

	raw := imageToScanlines(sub)
	assert.Len(raw, 4*(1+4*4))

	restored := scanlinesToImage(4, raw)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(parent.NRGBAAt(x+2, y+2), restored.NRGBAAt(x, y))
		}
	}
}

func TestImage_EncodeShouldCoverTheExportFormats(t *testing.T) {
	assert := assert.New(t)

	img, err := g.Image(DefaultTheme)
	assert.NoError(err)

	// Each export format has to be readable back by its decoder.
	for _, format := range validFormats {
		var buf bytes.Buffer
		assert.NoError(encodeImg(&buf, format, img))

		cfg, kind, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
		assert.NoError(err)
		assert.Equal(format, kind)
		assert.Equal(testSize, cfg.Width)
		assert.Equal(testSize, cfg.Height)
	}

	var buf bytes.Buffer
	assert.Error(encodeImg(&buf, "gif", img))
}

func TestImage_ResizeShouldProduceTheRequestedSize(t *testing.T) {
	assert := assert.New(t)

	img, err := g.Image(DefaultTheme)
	assert.NoError(err)

	res := resizeImg(img, 32)
	assert.Equal(image.Rect(0, 0, 32, 32), res.Bounds())

	// The corners stay transparent after the resampling.
	assert.EqualValues(0, res.NRGBAAt(0, 0).A)
}
