package rasterfilter

import (
	"image"
	"image/color"
	"io"

	"github.com/kpfaulkner/rasterfilter/imageformats"
)

const (
	pfmGrayHeader   = "Pf"
	pfmColourHeader = "PF"
)

func init() {
	image.RegisterFormat("pfm", pfmGrayHeader, Decode, DecodeConfig)
	image.RegisterFormat("pfm", pfmColourHeader, Decode, DecodeConfig)
}

// Decode reads a Portable Float Map and quantises it to an 8 bit image.
func Decode(r io.Reader) (image.Image, error) {
	pfm, err := imageformats.ReadPFM(r)
	if err != nil {
		return nil, err
	}
	return pfm.ToImage(), nil
}

func DecodeConfig(r io.Reader) (image.Config, error) {
	hdr, err := imageformats.ReadPFMHeader(r)
	if err != nil {
		return image.Config{}, err
	}

	var model color.Model = color.RGBAModel
	if hdr.Bands == 1 {
		model = color.GrayModel
	}
	return image.Config{
		ColorModel: model,
		Width:      hdr.Cols,
		Height:     hdr.Rows,
	}, nil
}
