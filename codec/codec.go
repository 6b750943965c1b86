package codec

import "fmt"

// MaxDimension is the largest height or width a stream header can carry.
// Both dimensions are serialized as uint16 fields.
const MaxDimension = 0xFFFF

// Codec is the universal interface for all grayscale raster codecs
type Codec interface {
	// Encode compresses a flat row-major pixel sequence into a stream
	Encode(params EncodeParams) ([]byte, error)

	// Decode decompresses a complete stream
	Decode(data []byte) (*DecodeResult, error)

	// Name returns the registry name (e.g. "lzw")
	Name() string

	// Extension returns the file extension used for streams of this codec
	// (e.g. ".glz")
	Extension() string
}

// EncodeParams contains parameters for encoding
type EncodeParams struct {
	Pixels []byte // Raw pixel data, row-major, one byte per sample
	Width  int    // Image width
	Height int    // Image height
}

// Validate checks that the parameters describe a raster the stream format
// can carry: positive dimensions within uint16 range and a pixel count
// matching height*width.
func (p EncodeParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.Height, p.Width)
	}
	if p.Width > MaxDimension || p.Height > MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrInvalidDimensions, p.Height, p.Width, MaxDimension)
	}
	if len(p.Pixels) != p.Width*p.Height {
		return fmt.Errorf("%w: %d pixels for %dx%d raster", ErrInvalidDimensions, len(p.Pixels), p.Height, p.Width)
	}
	return nil
}

// DecodeResult contains the result of decoding
type DecodeResult struct {
	Pixels []byte // Decoded pixel data, row-major
	Width  int    // Image width
	Height int    // Image height
}
