package rasterfilter

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/rasterfilter/imageformats"
	"github.com/kpfaulkner/rasterfilter/raster"
)

func TestDecodeRegisteredPFM(t *testing.T) {
	r := raster.NewRaster(1, 2, 3)
	copy(r.Data, []float32{0, 10, 20, 30, 40, 300})

	var buf bytes.Buffer
	require.NoError(t, imageformats.WritePFM(r, &buf))

	img, format, err := image.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "pfm", format)

	gray, ok := img.(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, []uint8{0, 10, 20, 30, 40, 255}, gray.Pix)
}

func TestDecodeConfigPFM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, imageformats.WritePFM(raster.NewRaster(3, 4, 5), &buf))

	cfg, format, err := image.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, "pfm", format)
	assert.Equal(t, 5, cfg.Width)
	assert.Equal(t, 4, cfg.Height)
	assert.Equal(t, color.RGBAModel, cfg.ColorModel)
}
