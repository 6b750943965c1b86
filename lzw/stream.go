package lzw

import (
	"encoding/binary"
	"fmt"

	"github.com/cocosip/go-grayscale-codec/codec"
)

// Stream layout, all fields big-endian:
//
//	offset 0     uint16   height
//	offset 2     uint16   width
//	offset 4     uint16   start-dictionary byte length S
//	offset 6     S bytes  start-dictionary symbols in stored order
//	offset 6+S   uint32   code block byte length C (always even)
//	offset 10+S  C bytes  C/2 codes, uint16 each
const (
	fixedHeaderLen  = 6 // height + width + start-dictionary length
	codeLenFieldLen = 4 // code block byte length
	codeSize        = 2 // bytes per code

	// maxCodeBlockLen is the largest byte count the uint32 length field
	// can declare.
	maxCodeBlockLen = 1<<32 - 1
)

// stream is a parsed container.
type stream struct {
	height    uint16
	width     uint16
	startDict []byte
	codes     []uint16
}

// marshalStream serializes a compressed raster into the stream layout.
func marshalStream(height, width uint16, startDict []byte, codes []uint16) []byte {
	total := fixedHeaderLen + len(startDict) + codeLenFieldLen + len(codes)*codeSize
	out := make([]byte, total)

	binary.BigEndian.PutUint16(out[0:2], height)
	binary.BigEndian.PutUint16(out[2:4], width)
	binary.BigEndian.PutUint16(out[4:6], uint16(len(startDict)))
	copy(out[fixedHeaderLen:], startDict)

	off := fixedHeaderLen + len(startDict)
	binary.BigEndian.PutUint32(out[off:off+4], uint32(len(codes)*codeSize))
	off += codeLenFieldLen
	for _, code := range codes {
		binary.BigEndian.PutUint16(out[off:off+2], code)
		off += codeSize
	}
	return out
}

// parseStream validates and decomposes a complete stream. The declared
// lengths must account for every byte: a short stream is truncated and a
// long one carries trailing garbage, both decompression failures.
func parseStream(data []byte) (*stream, error) {
	if len(data) < fixedHeaderLen {
		return nil, fmt.Errorf("%w: header needs %d bytes, have %d",
			codec.ErrDecompressionFailure, fixedHeaderLen, len(data))
	}

	s := &stream{
		height: binary.BigEndian.Uint16(data[0:2]),
		width:  binary.BigEndian.Uint16(data[2:4]),
	}

	dictLen := int(binary.BigEndian.Uint16(data[4:6]))
	if len(data) < fixedHeaderLen+dictLen+codeLenFieldLen {
		return nil, fmt.Errorf("%w: start dictionary of %d bytes does not fit in %d-byte stream",
			codec.ErrDecompressionFailure, dictLen, len(data))
	}
	s.startDict = data[fixedHeaderLen : fixedHeaderLen+dictLen]

	off := fixedHeaderLen + dictLen
	codeLen := int(binary.BigEndian.Uint32(data[off : off+codeLenFieldLen]))
	off += codeLenFieldLen

	if codeLen == 0 {
		return nil, fmt.Errorf("%w: empty code block", codec.ErrDecompressionFailure)
	}
	if codeLen%codeSize != 0 {
		return nil, fmt.Errorf("%w: code block length %d is not a multiple of %d",
			codec.ErrDecompressionFailure, codeLen, codeSize)
	}
	if len(data) != off+codeLen {
		return nil, fmt.Errorf("%w: stream is %d bytes, header describes %d",
			codec.ErrDecompressionFailure, len(data), off+codeLen)
	}

	s.codes = make([]uint16, codeLen/codeSize)
	for i := range s.codes {
		s.codes[i] = binary.BigEndian.Uint16(data[off+i*codeSize:])
	}
	return s, nil
}
