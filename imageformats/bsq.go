package imageformats

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kpfaulkner/rasterfilter/raster"
)

const (
	enviFloat32       = 4
	enviLittleEndian  = 0
	enviBigEndian     = 1
	enviHeaderMagic   = "ENVI"
	enviInterleaveBSQ = "bsq"
)

// WriteBSQ writes the raster samples as little endian float32 band-sequential data to
// data, and a matching ENVI header to header. BSQ is the same band-major layout the
// filter works on, so samples are written as is.
func WriteBSQ(r *raster.Raster, data io.Writer, header io.Writer) error {
	hdr := fmt.Sprintf("%s\nsamples = %d\nlines = %d\nbands = %d\nheader offset = 0\nfile type = ENVI Standard\ndata type = %d\ninterleave = %s\nbyte order = %d\n",
		enviHeaderMagic, r.Cols, r.Rows, r.Bands, enviFloat32, enviInterleaveBSQ, enviLittleEndian)
	if _, err := io.WriteString(header, hdr); err != nil {
		return err
	}

	w := bufio.NewWriter(data)
	if err := binary.Write(w, binary.LittleEndian, r.Data); err != nil {
		return err
	}
	return w.Flush()
}

type enviHeader struct {
	samples    int
	lines      int
	bands      int
	offset     int
	dataType   int
	byteOrder  int
	interleave string
}

// ReadBSQ reads float32 band-sequential data described by an ENVI header.
func ReadBSQ(data io.Reader, header io.Reader) (*raster.Raster, error) {
	hdr, err := parseENVIHeader(header)
	if err != nil {
		return nil, err
	}
	if hdr.dataType != enviFloat32 {
		return nil, fmt.Errorf("%w: ENVI data type %d, only float32 (4) is supported", ErrUnsupportedFormat, hdr.dataType)
	}
	if hdr.interleave != enviInterleaveBSQ {
		return nil, fmt.Errorf("%w: ENVI interleave %q, only bsq is supported", ErrUnsupportedFormat, hdr.interleave)
	}

	var order binary.ByteOrder = binary.LittleEndian
	if hdr.byteOrder == enviBigEndian {
		order = binary.BigEndian
	}

	br := bufio.NewReader(data)
	if hdr.offset > 0 {
		if _, err := br.Discard(hdr.offset); err != nil {
			return nil, fmt.Errorf("skipping ENVI header offset: %w", err)
		}
	}

	r := raster.NewRaster(hdr.bands, hdr.lines, hdr.samples)
	if err := binary.Read(br, order, r.Data); err != nil {
		return nil, fmt.Errorf("reading BSQ samples: %w", err)
	}
	return r, nil
}

func parseENVIHeader(header io.Reader) (*enviHeader, error) {
	scanner := bufio.NewScanner(header)
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != enviHeaderMagic {
		return nil, fmt.Errorf("%w: missing ENVI magic", ErrBadHeader)
	}

	hdr := &enviHeader{samples: -1, lines: -1, bands: -1, dataType: -1, interleave: enviInterleaveBSQ}
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		var target *int
		switch key {
		case "samples":
			target = &hdr.samples
		case "lines":
			target = &hdr.lines
		case "bands":
			target = &hdr.bands
		case "header offset":
			target = &hdr.offset
		case "data type":
			target = &hdr.dataType
		case "byte order":
			target = &hdr.byteOrder
		case "interleave":
			hdr.interleave = strings.ToLower(value)
			continue
		default:
			continue
		}

		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: ENVI %s = %q", ErrBadHeader, key, value)
		}
		*target = n
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if hdr.samples < 0 || hdr.lines < 0 || hdr.bands < 0 || hdr.dataType < 0 {
		return nil, fmt.Errorf("%w: ENVI header needs samples, lines, bands and data type", ErrBadHeader)
	}
	if err := checkSampleCount("ENVI", hdr.bands, hdr.lines, hdr.samples); err != nil {
		return nil, err
	}
	return hdr, nil
}
