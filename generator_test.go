package hunkicon

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/esimov/hunkicon/imop"
	"github.com/esimov/hunkicon/utils"
)

// The icon geometry is resolution independent, so the tests render at a
// reduced size to keep the suite fast.
const testSize = 128

var g *Generator

func init() {
	g = &Generator{
		Size:    testSize,
		Workers: 4,
	}
}

func TestRender_ShouldBeDeterministic(t *testing.T) {
	assert := assert.New(t)

	first, err := g.Render(DefaultTheme)
	assert.NoError(err)

	second, err := g.Render(DefaultTheme)
	assert.NoError(err)

	assert.True(bytes.Equal(first, second))
}

func TestRender_WorkerCountShouldNotAffectTheOutput(t *testing.T) {
	assert := assert.New(t)

	serial := &Generator{Size: testSize, Workers: 1}
	parallel := &Generator{Size: testSize, Workers: 7}

	a, err := serial.Render(DarkTheme)
	assert.NoError(err)

	b, err := parallel.Render(DarkTheme)
	assert.NoError(err)

	// The workers write into disjoint scanline bands, so the number of
	// them cannot leave a trace in the output.
	assert.True(bytes.Equal(a, b))
}

func TestRender_ShouldMaskThePixelsOutsideTheIcon(t *testing.T) {
	raw, err := g.Render(DefaultTheme)
	assert.NoError(t, err)

	rowLen := 1 + testSize*4
	var masked, leaked int

	for y := 0; y < testSize; y++ {
		if raw[y*rowLen] != 0 {
			t.Fatalf("scanline %d should start with a zero filter byte", y)
		}

		fy := (float64(y) + 0.5) / testSize
		for x := 0; x < testSize; x++ {
			fx := (float64(x) + 0.5) / testSize
			if roundedBoxSDF(fx, fy, 0.5, 0.5, outerHalf, outerHalf, outerRadius) <= 0 {
				continue
			}
			masked++

			// Outside of the icon mask every channel has to stay zero.
			o := y*rowLen + 1 + x*4
			if raw[o] != 0 || raw[o+1] != 0 || raw[o+2] != 0 || raw[o+3] != 0 {
				leaked++
			}
		}
	}

	assert.Greater(t, masked, 0)
	assert.Equal(t, 0, leaked)

	// The canvas center lies well inside the mask and is fully opaque.
	o := (testSize/2)*rowLen + 1 + (testSize/2)*4
	assert.EqualValues(t, 255, raw[o+3])
}

func TestRender_EdgeAlphaShouldFadeOutMonotonically(t *testing.T) {
	assert := assert.New(t)

	raw, err := g.Render(DefaultTheme)
	assert.NoError(err)

	// Walk the middle scanline from the canvas center towards the right
	// edge, collecting the alpha samples along the way.
	rowLen := 1 + testSize*4
	row := raw[(testSize/2)*rowLen:]

	alphas := []uint8{}
	for x := testSize / 2; x < testSize; x++ {
		alphas = append(alphas, row[1+x*4+3])
	}

	assert.EqualValues(255, alphas[0])
	assert.EqualValues(0, alphas[len(alphas)-1])

	var partial bool
	for i := 1; i < len(alphas); i++ {
		if alphas[i] > alphas[i-1] {
			t.Fatalf("the mask alpha should not increase towards the icon edge, got %d after %d", alphas[i], alphas[i-1])
		}
		if alphas[i] > 0 && alphas[i] < 255 {
			partial = true
		}
	}
	// At least one sample falls into the antialiasing band of the contour.
	assert.True(partial)
}

func TestRender_MonoVariantShouldCarryNoDiffHue(t *testing.T) {
	raw, err := g.Render(MonoTheme)
	assert.NoError(t, err)

	// Every color of the mono palette holds identical red and green
	// channels, so the composited output cannot tell removals and
	// additions apart. The blue channel is allowed to keep the slight
	// cool cast of the palette, which peaks at eight units.
	rowLen := 1 + testSize*4
	var hued int

	for y := 0; y < testSize; y++ {
		for x := 0; x < testSize; x++ {
			o := y*rowLen + 1 + x*4
			if raw[o+3] == 0 {
				continue
			}

			dRG := int(raw[o]) - int(raw[o+1])
			dGB := int(raw[o+1]) - int(raw[o+2])
			if utils.Abs(dRG) > 1 || utils.Abs(dGB) > 9 {
				hued++
			}
		}
	}
	assert.Equal(t, 0, hued)
}

func TestRender_PanelColorShouldStayInsideThePanel(t *testing.T) {
	assert := assert.New(t)

	base, err := g.Render(DefaultTheme)
	assert.NoError(err)

	// Recolor the panel, keeping every other palette entry untouched.
	theme := *DefaultTheme
	theme.Panel = imop.NewColor(255, 0, 0)

	tinted, err := g.Render(&theme)
	assert.NoError(err)
	assert.False(bytes.Equal(base, tinted))

	rowLen := 1 + testSize*4
	var leaked int

	for y := 0; y < testSize; y++ {
		fy := (float64(y) + 0.5) / testSize
		for x := 0; x < testSize; x++ {
			o := y*rowLen + 1 + x*4
			if bytes.Equal(base[o:o+4], tinted[o:o+4]) {
				continue
			}

			// A differing pixel has to fall inside the panel shape.
			fx := (float64(x) + 0.5) / testSize
			if roundedBoxSDF(fx, fy, 0.5, 0.5, panelHalfW, panelHalfH, panelRadius) > 0 {
				leaked++
			}
		}
	}
	assert.Equal(0, leaked)
}

func TestRender_RowColorsShouldFollowTheSideRamp(t *testing.T) {
	assert := assert.New(t)

	sc := newScene(DefaultTheme)
	assert.Equal(len(sc.leftRows), len(sc.rightRows))

	n := len(sc.leftRows)
	for i := 0; i < n; i++ {
		ramp := float64(i) / float64(n-1)

		left := imop.Mix(DefaultTheme.MinusMain, DefaultTheme.MinusSoft, ramp)
		assert.Equal(left, sc.leftRows[i].color)

		right := imop.Mix(DefaultTheme.PlusMain, DefaultTheme.PlusSoft, ramp)
		assert.Equal(right, sc.rightRows[i].color)

		// Both columns anchor their rows to the column start, only the
		// row length varies.
		assert.InDelta(leftColX0, sc.leftRows[i].cx-sc.leftRows[i].hw, 1e-12)
		assert.InDelta(rightColX0, sc.rightRows[i].cx-sc.rightRows[i].hw, 1e-12)
	}
}

func TestRender_ShouldRejectMissingOrInvalidThemes(t *testing.T) {
	assert := assert.New(t)

	_, err := g.Render(nil)
	assert.Error(err)

	theme := *DefaultTheme
	theme.PanelAlpha = 1.2
	_, err = g.Render(&theme)
	assert.Error(err)

	theme = *DefaultTheme
	theme.BgTop.R = math.NaN()
	_, err = g.Render(&theme)
	assert.Error(err)
}

func TestGenerator_ProcessShouldEncodeAStandardPNG(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(g.Process(&buf, DefaultTheme))

	// The encoded stream has to be readable by the standard library decoder.
	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	assert.NoError(err)
	assert.Equal(image.Rect(0, 0, testSize, testSize), img.Bounds())

	nrgba, ok := img.(*image.NRGBA)
	assert.True(ok)

	want, err := g.Image(DefaultTheme)
	assert.NoError(err)
	assert.True(bytes.Equal(want.Pix, nrgba.Pix))
}
