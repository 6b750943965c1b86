package lzw

import (
	"fmt"

	"github.com/cocosip/go-grayscale-codec/codec"
)

// Encoder compresses grayscale rasters into self-contained streams. The
// dictionary is rebuilt from scratch for every raster; no state survives
// between calls.
type Encoder struct {
	width  int
	height int
}

// Encode compresses a flat row-major pixel sequence into a stream carrying
// its own start dictionary. Identical input always yields an identical
// stream.
func Encode(pixels []byte, width, height int) ([]byte, error) {
	params := codec.EncodeParams{Pixels: pixels, Width: width, Height: height}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	enc := &Encoder{width: width, height: height}
	return enc.encode(pixels)
}

func (enc *Encoder) encode(pixels []byte) ([]byte, error) {
	startDict := distinctSymbols(pixels)
	table := newEncodeTable(startDict)

	codes := make([]uint16, 0, len(pixels)/2+1)
	for i := 0; i < len(pixels); {
		code, n, ok := table.longestMatch(pixels, i)
		if !ok {
			return nil, fmt.Errorf("%w: no dictionary entry for symbol %d at offset %d",
				codec.ErrCompressionFailure, pixels[i], i)
		}
		codes = append(codes, code)
		i += n
		if i < len(pixels) {
			table.add(code, pixels[i])
		}
	}

	if len(codes) > maxCodeBlockLen/codeSize {
		return nil, fmt.Errorf("%w: %d codes exceed the code block length field",
			codec.ErrCompressionFailure, len(codes))
	}

	return marshalStream(uint16(enc.height), uint16(enc.width), startDict, codes), nil
}

// distinctSymbols returns the symbols present in the source in ascending
// numeric order. This is the start dictionary: it is persisted verbatim in
// the stream and seeds codes 0..k-1 identically on both sides.
func distinctSymbols(pixels []byte) []byte {
	var seen [256]bool
	for _, p := range pixels {
		seen[p] = true
	}
	dict := make([]byte, 0, 16)
	for v := 0; v < 256; v++ {
		if seen[v] {
			dict = append(dict, byte(v))
		}
	}
	return dict
}
