package imageformats

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/tiff"

	"github.com/kpfaulkner/rasterfilter/raster"
)

// HeaderPath gives the ENVI header file that goes with a BSQ data file.
func HeaderPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".hdr"
}

// Load reads a raster, choosing the decoder from the file extension.
// PFM and BSQ keep float samples, TIFF/PNG/JPEG are converted with raster.FromImage.
func Load(path string) (*raster.Raster, error) {
	ext := strings.ToLower(filepath.Ext(path))

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r *raster.Raster
	switch ext {
	case ".pfm":
		r, err = ReadPFM(f)
	case ".bsq", ".img", ".raw":
		var hf *os.File
		hf, err = os.Open(HeaderPath(path))
		if err != nil {
			return nil, fmt.Errorf("opening ENVI header for %s: %w", path, err)
		}
		defer hf.Close()
		r, err = ReadBSQ(f, hf)
	case ".tif", ".tiff":
		r, err = decodeWith(f, tiff.Decode)
	case ".png":
		r, err = decodeWith(f, png.Decode)
	case ".jpg", ".jpeg":
		r, err = decodeWith(f, jpeg.Decode)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	log.Debugf("loaded %s: %v", path, r)
	return r, nil
}

func decodeWith(f *os.File, decode func(r io.Reader) (image.Image, error)) (*raster.Raster, error) {
	img, err := decode(f)
	if err != nil {
		return nil, err
	}
	return raster.FromImage(img), nil
}

// Save writes a raster, choosing the encoder from the file extension.
// PNG and TIFF output is rounded to integers: 8 bits per sample when every value fits
// in 0-255, 16 bits otherwise.
func Save(path string, r *raster.Raster) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pfm", ".bsq", ".img", ".raw", ".png", ".tif", ".tiff":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch ext {
	case ".pfm":
		err = WritePFM(r, f)
	case ".bsq", ".img", ".raw":
		err = saveBSQ(r, f, HeaderPath(path))
	case ".png":
		err = png.Encode(f, integerImage(r, path))
	case ".tif", ".tiff":
		err = tiff.Encode(f, integerImage(r, path), &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	log.Debugf("saved %s: %v", path, r)
	return nil
}

func saveBSQ(r *raster.Raster, data io.Writer, headerPath string) error {
	hf, err := os.Create(headerPath)
	if err != nil {
		return err
	}
	err = WriteBSQ(r, data, hf)
	if closeErr := hf.Close(); err == nil {
		err = closeErr
	}
	return err
}

// integerImage picks the narrowest integer image that holds every sample of r.
func integerImage(r *raster.Raster, path string) image.Image {
	lo, hi, nans := r.ValueRange()
	if lo < 0 || hi > 65535 || nans > 0 {
		log.Warnf("%s: values in [%g, %g] (%d NaN) will be clamped to 0-65535, use .pfm or .bsq to keep them", path, lo, hi, nans)
	}
	if hi > 255 {
		return r.ToImage16()
	}
	return r.ToImage()
}
