// Package raw implements a passthrough codec that stores rasters verbatim.
// It shares the registry with the real codecs and serves as the
// uncompressed baseline when measuring compression ratios.
package raw

import (
	"encoding/binary"
	"fmt"

	"github.com/cocosip/go-grayscale-codec/codec"
)

const (
	// CodecName is the registry name of this codec.
	CodecName = "raw"

	// StreamExtension is the file extension used for streams of this codec.
	StreamExtension = ".graw"
)

// Stream layout, all fields big-endian: height uint16, width uint16,
// payload byte length uint32, then height*width raw pixels.
const headerLen = 8

var _ codec.Codec = (*RawCodec)(nil)

// RawCodec implements the codec.Codec interface for verbatim storage.
type RawCodec struct{}

// NewRawCodec creates a new raw codec.
func NewRawCodec() *RawCodec {
	return &RawCodec{}
}

// Name returns the codec name
func (c *RawCodec) Name() string {
	return CodecName
}

// Extension returns the stream file extension
func (c *RawCodec) Extension() string {
	return StreamExtension
}

// Encode stores pixel data verbatim behind a dimension header
func (c *RawCodec) Encode(params codec.EncodeParams) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := make([]byte, headerLen+len(params.Pixels))
	binary.BigEndian.PutUint16(out[0:2], uint16(params.Height))
	binary.BigEndian.PutUint16(out[2:4], uint16(params.Width))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(params.Pixels)))
	copy(out[headerLen:], params.Pixels)
	return out, nil
}

// Decode unpacks a verbatim stream
func (c *RawCodec) Decode(data []byte) (*codec.DecodeResult, error) {
	if len(data) < headerLen {
		return nil, fmt.Errorf("%w: header needs %d bytes, have %d",
			codec.ErrDecompressionFailure, headerLen, len(data))
	}

	height := int(binary.BigEndian.Uint16(data[0:2]))
	width := int(binary.BigEndian.Uint16(data[2:4]))
	payloadLen := int(binary.BigEndian.Uint32(data[4:8]))

	if payloadLen != height*width {
		return nil, fmt.Errorf("%w: payload of %d bytes for a %dx%d raster",
			codec.ErrDecompressionFailure, payloadLen, height, width)
	}
	if len(data) != headerLen+payloadLen {
		return nil, fmt.Errorf("%w: stream is %d bytes, header describes %d",
			codec.ErrDecompressionFailure, len(data), headerLen+payloadLen)
	}
	if height == 0 || width == 0 {
		return nil, fmt.Errorf("%w: empty raster", codec.ErrDecompressionFailure)
	}

	pixels := make([]byte, payloadLen)
	copy(pixels, data[headerLen:])

	return &codec.DecodeResult{
		Pixels: pixels,
		Width:  width,
		Height: height,
	}, nil
}

// RegisterRawCodec registers the raw codec with the default registry
func RegisterRawCodec() {
	codec.Register(NewRawCodec())
}

func init() {
	RegisterRawCodec()
}
