// Package grayscale is the user-facing façade of the raster store. It
// composes the raster container, the codec registry, and the image file
// boundary into one Image type with open/save and compress/decompress
// operations.
package grayscale

import (
	"fmt"
	"image"

	"github.com/cocosip/go-grayscale-codec/codec"
	"github.com/cocosip/go-grayscale-codec/imagefile"
	"github.com/cocosip/go-grayscale-codec/raster"

	// Register the built-in codecs with the default registry.
	_ "github.com/cocosip/go-grayscale-codec/lzw"
	_ "github.com/cocosip/go-grayscale-codec/raw"
)

// Image is an 8-bit grayscale raster with compression and file operations.
type Image struct {
	buf *raster.Buffer
}

// New creates a zero-filled grayscale image.
func New(height, width int) (*Image, error) {
	buf, err := raster.New(height, width)
	if err != nil {
		return nil, err
	}
	return &Image{buf: buf}, nil
}

// FromMatrix creates an image from rows of pixel values. The matrix must be
// non-empty and rectangular.
func FromMatrix(rows [][]uint8) (*Image, error) {
	buf, err := raster.FromMatrix(rows)
	if err != nil {
		return nil, err
	}
	return &Image{buf: buf}, nil
}

// FromBuffer wraps an existing raster.
func FromBuffer(buf *raster.Buffer) *Image {
	return &Image{buf: buf}
}

// FromImage converts any image to a grayscale raster, extracting luminance
// from color sources.
func FromImage(src image.Image) (*Image, error) {
	height, width, samples := imagefile.Samples(imagefile.Grayscale(src))
	buf, err := raster.FromPixels(height, width, samples)
	if err != nil {
		return nil, err
	}
	return &Image{buf: buf}, nil
}

// Buffer returns the underlying raster.
func (img *Image) Buffer() *raster.Buffer {
	return img.buf
}

// Height returns the number of rows.
func (img *Image) Height() int {
	return img.buf.Height()
}

// Width returns the number of columns.
func (img *Image) Width() int {
	return img.buf.Width()
}

// At returns the pixel at (row, col).
func (img *Image) At(row, col int) (uint8, error) {
	return img.buf.At(row, col)
}

// Set writes the pixel at (row, col).
func (img *Image) Set(row, col int, v uint8) error {
	return img.buf.Set(row, col, v)
}

// Fill overwrites every pixel with v.
func (img *Image) Fill(v uint8) {
	img.buf.Fill(v)
}

// Clear resets every pixel to zero.
func (img *Image) Clear() {
	img.buf.Clear()
}

// String renders the image as text, one line of decimal values per row.
func (img *Image) String() string {
	return img.buf.String()
}

// GrayImage returns the raster as a standard library grayscale image.
func (img *Image) GrayImage() *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, img.buf.Width(), img.buf.Height()))
	copy(gray.Pix, img.buf.Pixels())
	return gray
}

// Compress encodes the image with the named codec. Codecs are addressed by
// registry name ("lzw", "raw") or stream extension (".glz", ".graw").
func (img *Image) Compress(codecName string) ([]byte, error) {
	c, err := codec.Get(codecName)
	if err != nil {
		return nil, fmt.Errorf("compress with %q: %w", codecName, err)
	}
	return c.Encode(codec.EncodeParams{
		Pixels: img.buf.Pixels(),
		Width:  img.buf.Width(),
		Height: img.buf.Height(),
	})
}

// Decompress reconstructs an image from a stream produced by the named
// codec.
func Decompress(data []byte, codecName string) (*Image, error) {
	c, err := codec.Get(codecName)
	if err != nil {
		return nil, fmt.Errorf("decompress with %q: %w", codecName, err)
	}
	result, err := c.Decode(data)
	if err != nil {
		return nil, err
	}
	buf, err := raster.FromPixels(result.Height, result.Width, result.Pixels)
	if err != nil {
		return nil, err
	}
	return &Image{buf: buf}, nil
}
