package imageformats

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/kpfaulkner/rasterfilter/raster"
	"github.com/kpfaulkner/rasterfilter/util"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported raster format")
	ErrBadHeader         = errors.New("malformed raster header")
)

// MaxSamples caps the bands*rows*cols a file header may declare before anything is allocated.
const MaxSamples = 1 << 30

func checkSampleCount(format string, bands int, rows int, cols int) error {
	n, ok := raster.SampleCount(bands, rows, cols)
	if !ok || n > MaxSamples {
		return fmt.Errorf("%w: %s declares %d band(s) of %dx%d, more than %d samples", ErrBadHeader, format, bands, rows, cols, MaxSamples)
	}
	return nil
}

// WritePFM writes a 1 band (Pf) or 3 band (PF) raster as a big endian Portable Float Map.
// PFM stores rows bottom to top with interleaved channels.
func WritePFM(r *raster.Raster, output io.Writer) error {
	if r.Bands != 1 && r.Bands != 3 {
		return fmt.Errorf("%w: PFM needs 1 or 3 bands, got %d", ErrUnsupportedFormat, r.Bands)
	}

	pf := util.IfThenElse(r.Bands == 1, "Pf", "PF")
	w := bufio.NewWriter(output)
	if _, err := fmt.Fprintf(w, "%s\n%d %d\n1.0\n", pf, r.Cols, r.Rows); err != nil {
		return err
	}

	var buf [4]byte
	for y := r.Rows - 1; y >= 0; y-- {
		for x := 0; x < r.Cols; x++ {
			for c := 0; c < r.Bands; c++ {
				binary.BigEndian.PutUint32(buf[:], math.Float32bits(r.At(c, y, x)))
				if _, err := w.Write(buf[:]); err != nil {
					return err
				}
			}
		}
	}
	return w.Flush()
}

// ReadPFM reads a Portable Float Map. A negative scale means little endian samples.
func ReadPFM(input io.Reader) (*raster.Raster, error) {
	br := bufio.NewReader(input)
	hdr, err := readPFMHeader(br)
	if err != nil {
		return nil, err
	}

	r := raster.NewRaster(hdr.Bands, hdr.Rows, hdr.Cols)
	var buf [4]byte
	for y := hdr.Rows - 1; y >= 0; y-- {
		for x := 0; x < hdr.Cols; x++ {
			for c := 0; c < hdr.Bands; c++ {
				if _, err := io.ReadFull(br, buf[:]); err != nil {
					return nil, fmt.Errorf("reading PFM samples: %w", err)
				}
				r.Set(c, y, x, math.Float32frombits(hdr.Order.Uint32(buf[:])))
			}
		}
	}
	return r, nil
}

// PFMHeader is the parsed text header of a Portable Float Map.
type PFMHeader struct {
	Bands int
	Cols  int
	Rows  int
	Order binary.ByteOrder
}

// ReadPFMHeader reads only the header of a Portable Float Map.
func ReadPFMHeader(input io.Reader) (*PFMHeader, error) {
	return readPFMHeader(bufio.NewReader(input))
}

func readPFMHeader(br *bufio.Reader) (*PFMHeader, error) {
	magic, err := readToken(br)
	if err != nil {
		return nil, err
	}

	hdr := &PFMHeader{Order: binary.BigEndian}
	switch magic {
	case "Pf":
		hdr.Bands = 1
	case "PF":
		hdr.Bands = 3
	default:
		return nil, fmt.Errorf("%w: PFM magic %q", ErrBadHeader, magic)
	}

	values := make([]string, 3)
	for i := range values {
		if values[i], err = readToken(br); err != nil {
			return nil, err
		}
	}
	hdr.Cols, err = strconv.Atoi(values[0])
	if err != nil || hdr.Cols < 0 {
		return nil, fmt.Errorf("%w: PFM width %q", ErrBadHeader, values[0])
	}
	hdr.Rows, err = strconv.Atoi(values[1])
	if err != nil || hdr.Rows < 0 {
		return nil, fmt.Errorf("%w: PFM height %q", ErrBadHeader, values[1])
	}
	scale, err := strconv.ParseFloat(values[2], 64)
	if err != nil || scale == 0 {
		return nil, fmt.Errorf("%w: PFM scale %q", ErrBadHeader, values[2])
	}
	if scale < 0 {
		hdr.Order = binary.LittleEndian
	}
	if err := checkSampleCount("PFM", hdr.Bands, hdr.Rows, hdr.Cols); err != nil {
		return nil, err
	}
	return hdr, nil
}

// readToken reads a whitespace delimited header token and consumes exactly one
// whitespace byte after it, so binary data following the last token is untouched.
func readToken(br *bufio.Reader) (string, error) {
	var token []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(token) > 0 {
				return string(token), nil
			}
			return "", fmt.Errorf("%w: %v", ErrBadHeader, err)
		}
		if isSpace(b) {
			if len(token) == 0 {
				continue
			}
			return string(token), nil
		}
		token = append(token, b)
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\r' || b == '\t'
}
