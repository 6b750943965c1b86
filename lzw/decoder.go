package lzw

import (
	"fmt"

	"github.com/cocosip/go-grayscale-codec/codec"
)

// Decoder reconstructs rasters from self-contained streams.
type Decoder struct {
	table *decodeTable
}

// Decode decompresses a complete stream. It returns the flat row-major
// pixel sequence together with the raster dimensions.
func Decode(data []byte) (pixels []byte, width, height int, err error) {
	s, err := parseStream(data)
	if err != nil {
		return nil, 0, 0, err
	}

	dec := &Decoder{table: newDecodeTable(s.startDict)}
	pixels, err = dec.decode(s)
	if err != nil {
		return nil, 0, 0, err
	}
	return pixels, int(s.width), int(s.height), nil
}

func (dec *Decoder) decode(s *stream) ([]byte, error) {
	t := dec.table
	if t.size() == 0 {
		return nil, fmt.Errorf("%w: empty start dictionary", codec.ErrDecompressionFailure)
	}

	want := int(s.height) * int(s.width)
	m := len(s.codes)

	// Every code emits at least one symbol, and the j-th code's entry holds
	// at most j symbols, so m codes emit between m and m(m+1)/2 symbols.
	// Reject rasters the code block cannot fill before allocating for them.
	if m > want || int64(m)*int64(m+1)/2 < int64(want) {
		return nil, fmt.Errorf("%w: %d codes cannot produce a %dx%d raster",
			codec.ErrDecompressionFailure, m, s.height, s.width)
	}

	out := make([]byte, 0, want)

	first := s.codes[0]
	if int(first) >= t.size() {
		return nil, fmt.Errorf("%w: first code %d outside start dictionary of %d entries",
			codec.ErrDecompressionFailure, first, t.size())
	}
	out = t.expand(out, first)
	prev := first
	prevStart := 0

	for _, code := range s.codes[1:] {
		size := t.size()
		var start int
		switch {
		case int(code) < size:
			if len(out)+t.entryLen(code) > want {
				return nil, fmt.Errorf("%w: decoded data exceeds %dx%d raster",
					codec.ErrDecompressionFailure, s.height, s.width)
			}
			start = len(out)
			out = t.expand(out, code)
			t.add(prev, out[start])
		case int(code) == size:
			// The code names the entry this very step defines: the previous
			// entry extended by its own first symbol.
			t.add(prev, out[prevStart])
			if len(out)+t.entryLen(code) > want {
				return nil, fmt.Errorf("%w: decoded data exceeds %dx%d raster",
					codec.ErrDecompressionFailure, s.height, s.width)
			}
			start = len(out)
			out = t.expand(out, code)
		default:
			return nil, fmt.Errorf("%w: code %d beyond dictionary size %d",
				codec.ErrDecompressionFailure, code, size)
		}
		prev = code
		prevStart = start
	}

	if len(out) != want {
		return nil, fmt.Errorf("%w: decoded %d pixels for a %dx%d raster",
			codec.ErrDecompressionFailure, len(out), s.height, s.width)
	}
	return out, nil
}
