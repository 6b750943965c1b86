// Package raster provides the 8-bit grayscale pixel container the codecs
// operate on.
package raster

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/cocosip/go-grayscale-codec/codec"
)

// Buffer is a two-dimensional 8-bit grayscale raster backed by a single
// row-major pixel slice. Every Buffer produced by this package holds the
// invariant len(pixels) == height*width.
type Buffer struct {
	height int
	width  int
	pix    []uint8
}

// New allocates a zero-filled raster of the given dimensions.
func New(height, width int) (*Buffer, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", codec.ErrInvalidDimensions, height, width)
	}
	return &Buffer{
		height: height,
		width:  width,
		pix:    make([]uint8, height*width),
	}, nil
}

// FromMatrix builds a raster from rows of pixel values. The matrix must be
// non-empty and rectangular.
func FromMatrix(rows [][]uint8) (*Buffer, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", codec.ErrInvalidDimensions)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				codec.ErrInvalidDimensions, i, len(row), width)
		}
	}

	buf := &Buffer{
		height: len(rows),
		width:  width,
		pix:    make([]uint8, len(rows)*width),
	}
	for i, row := range rows {
		copy(buf.pix[i*width:(i+1)*width], row)
	}
	return buf, nil
}

// FromPixels wraps an existing row-major pixel slice. The slice is adopted,
// not copied; it must hold exactly height*width samples.
func FromPixels(height, width int, pix []uint8) (*Buffer, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", codec.ErrInvalidDimensions, height, width)
	}
	if len(pix) != height*width {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d raster",
			codec.ErrInvalidDimensions, len(pix), height, width)
	}
	return &Buffer{height: height, width: width, pix: pix}, nil
}

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.height }

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.width }

// At returns the pixel at (row, col).
func (b *Buffer) At(row, col int) (uint8, error) {
	if err := b.check(row, col); err != nil {
		return 0, err
	}
	return b.pix[row*b.width+col], nil
}

// Set writes the pixel at (row, col).
func (b *Buffer) Set(row, col int, v uint8) error {
	if err := b.check(row, col); err != nil {
		return err
	}
	b.pix[row*b.width+col] = v
	return nil
}

func (b *Buffer) check(row, col int) error {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return fmt.Errorf("%w: (%d, %d) in %dx%d raster",
			codec.ErrOutOfBounds, row, col, b.height, b.width)
	}
	return nil
}

// Fill overwrites every pixel with v.
func (b *Buffer) Fill(v uint8) {
	for i := range b.pix {
		b.pix[i] = v
	}
}

// Clear resets every pixel to zero.
func (b *Buffer) Clear() {
	b.Fill(0)
}

// Pixels returns the raster's backing row-major pixel slice. The slice is
// shared, not copied; callers handing it to a codec must not mutate it
// until the codec returns.
func (b *Buffer) Pixels() []uint8 {
	return b.pix
}

// Matrix copies the raster out as one slice per row, the inverse of
// FromMatrix.
func (b *Buffer) Matrix() [][]uint8 {
	rows := make([][]uint8, b.height)
	for i := range rows {
		rows[i] = make([]uint8, b.width)
		copy(rows[i], b.pix[i*b.width:(i+1)*b.width])
	}
	return rows
}

// Clone returns a deep copy of the raster.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{height: b.height, width: b.width, pix: pix}
}

// Equal reports whether two rasters have identical dimensions and pixels.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || b.height != other.height || b.width != other.width {
		return false
	}
	return bytes.Equal(b.pix, other.pix)
}

// String renders the raster as text: one line per row, pixel values as
// space-separated decimals.
func (b *Buffer) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.width; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(b.pix[row*b.width+col])))
		}
	}
	return sb.String()
}
