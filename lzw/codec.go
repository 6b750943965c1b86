// Package lzw implements a lossless LZW codec for 8-bit grayscale rasters.
// Streams are self-contained: the start dictionary travels with the codes,
// so decoding needs nothing but the stream itself.
package lzw

import (
	"github.com/cocosip/go-grayscale-codec/codec"
)

const (
	// CodecName is the registry name of this codec.
	CodecName = "lzw"

	// StreamExtension is the file extension used for streams of this codec.
	StreamExtension = ".glz"
)

var _ codec.Codec = (*LZWCodec)(nil)

// LZWCodec implements the codec.Codec interface for the self-contained LZW
// stream format.
type LZWCodec struct{}

// NewLZWCodec creates a new LZW codec.
func NewLZWCodec() *LZWCodec {
	return &LZWCodec{}
}

// Name returns the codec name
func (c *LZWCodec) Name() string {
	return CodecName
}

// Extension returns the stream file extension
func (c *LZWCodec) Extension() string {
	return StreamExtension
}

// Encode compresses pixel data into an LZW stream
func (c *LZWCodec) Encode(params codec.EncodeParams) ([]byte, error) {
	return Encode(params.Pixels, params.Width, params.Height)
}

// Decode decompresses an LZW stream
func (c *LZWCodec) Decode(data []byte) (*codec.DecodeResult, error) {
	pixels, width, height, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return &codec.DecodeResult{
		Pixels: pixels,
		Width:  width,
		Height: height,
	}, nil
}

// RegisterLZWCodec registers the LZW codec with the default registry
func RegisterLZWCodec() {
	codec.Register(NewLZWCodec())
}

func init() {
	RegisterLZWCodec()
}
