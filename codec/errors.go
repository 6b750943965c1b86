package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrInvalidParameter is returned when encoding/decoding parameters are invalid
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidDimensions is returned when raster dimensions are empty, ragged,
	// inconsistent with the pixel count, or outside the stream header's range
	ErrInvalidDimensions = errors.New("invalid raster dimensions")

	// ErrOutOfBounds is returned when a pixel access lies outside the raster
	ErrOutOfBounds = errors.New("pixel index out of bounds")

	// ErrCompressionFailure is returned when encoding cannot produce a valid stream
	ErrCompressionFailure = errors.New("compression failure")

	// ErrDecompressionFailure is returned when a stream is truncated, inconsistent,
	// or references codes that were never defined
	ErrDecompressionFailure = errors.New("decompression failure")
)
