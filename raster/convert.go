package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/kpfaulkner/rasterfilter/util"
)

// FromImage converts a decoded image into a band-major raster.
// Gray images give a single band, anything else gives three bands (R, G, B). 16-bit
// images keep their full 0-65535 range, everything else is read as 0-255. Alpha is dropped.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	rows := bounds.Dy()
	cols := bounds.Dx()

	switch src := img.(type) {
	case *image.Gray:
		r := NewRaster(1, rows, cols)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				r.Data[y*cols+x] = float32(src.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y)
			}
		}
		return r
	case *image.Gray16:
		r := NewRaster(1, rows, cols)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				r.Data[y*cols+x] = float32(src.Gray16At(x+bounds.Min.X, y+bounds.Min.Y).Y)
			}
		}
		return r
	case *image.RGBA64, *image.NRGBA64:
		r := NewRaster(3, rows, cols)
		n := r.PixelsPerBand()
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				c := color.NRGBA64Model.Convert(src.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA64)
				p := y*cols + x
				r.Data[p] = float32(c.R)
				r.Data[n+p] = float32(c.G)
				r.Data[2*n+p] = float32(c.B)
			}
		}
		return r
	}

	r := NewRaster(3, rows, cols)
	n := r.PixelsPerBand()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			// non-premultiplied so that semi transparent pixels keep their colour values
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			p := y*cols + x
			r.Data[p] = float32(c.R)
			r.Data[n+p] = float32(c.G)
			r.Data[2*n+p] = float32(c.B)
		}
	}
	return r
}

// ToImage quantises the raster to 8 bits. Single band rasters become *image.Gray,
// rasters with three or more bands become *image.RGBA built from the first three.
// Two band rasters use the first band only.
func (r *Raster) ToImage() image.Image {
	rect := image.Rect(0, 0, r.Cols, r.Rows)
	n := r.PixelsPerBand()

	if r.Bands < 3 {
		img := image.NewGray(rect)
		for p := 0; p < n; p++ {
			img.Pix[(p/r.Cols)*img.Stride+p%r.Cols] = toUint8(r.Data[p])
		}
		return img
	}

	img := image.NewRGBA(rect)
	for p := 0; p < n; p++ {
		pos := (p/r.Cols)*img.Stride + (p%r.Cols)*4
		img.Pix[pos] = toUint8(r.Data[p])
		img.Pix[pos+1] = toUint8(r.Data[n+p])
		img.Pix[pos+2] = toUint8(r.Data[2*n+p])
		img.Pix[pos+3] = 255
	}
	return img
}

// ToImage16 is ToImage with 16 bits per sample, giving *image.Gray16 or *image.RGBA64.
func (r *Raster) ToImage16() image.Image {
	rect := image.Rect(0, 0, r.Cols, r.Rows)
	n := r.PixelsPerBand()

	if r.Bands < 3 {
		img := image.NewGray16(rect)
		for p := 0; p < n; p++ {
			img.SetGray16(p%r.Cols, p/r.Cols, color.Gray16{Y: toUint16(r.Data[p])})
		}
		return img
	}

	img := image.NewRGBA64(rect)
	for p := 0; p < n; p++ {
		img.SetRGBA64(p%r.Cols, p/r.Cols, color.RGBA64{
			R: toUint16(r.Data[p]),
			G: toUint16(r.Data[n+p]),
			B: toUint16(r.Data[2*n+p]),
			A: 0xffff,
		})
	}
	return img
}

func toUint16(v float32) uint16 {
	return uint16(util.Clamp(math.Round(float64(v)), 0, 65535))
}

func toUint8(v float32) uint8 {
	return uint8(util.Clamp(math.Round(float64(v)), 0, 255))
}
