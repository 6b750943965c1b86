package grayscale

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/cocosip/go-grayscale-codec/imagefile"
	"github.com/cocosip/go-grayscale-codec/raster"
)

// The codec packages never touch these; external image formats stay behind
// the imagefile boundary.
var (
	fileDecoder imagefile.Decoder = imagefile.Standard{}
	fileEncoder imagefile.Encoder = imagefile.Standard{}
)

// Decode converts image file bytes (PNG, JPEG, GIF, BMP, TIFF) into a
// grayscale image.
func Decode(data []byte) (*Image, error) {
	height, width, samples, err := fileDecoder.Decode(data)
	if err != nil {
		return nil, err
	}
	buf, err := raster.FromPixels(height, width, samples)
	if err != nil {
		return nil, err
	}
	return &Image{buf: buf}, nil
}

// Open reads an image file from disk and converts it to grayscale.
func Open(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	return Decode(data)
}

// EncodePNG returns the image as a PNG file.
func (img *Image) EncodePNG() ([]byte, error) {
	return fileEncoder.Encode(img.buf.Height(), img.buf.Width(), img.buf.Pixels())
}

// Save writes the image to disk. The format follows the file extension
// (.png, .jpg, .gif, .tif, .bmp).
func (img *Image) Save(path string) error {
	return imaging.Save(img.GrayImage(), path)
}

// CompressToFile compresses the image with the named codec and writes the
// stream to path. An empty codec name selects the codec registered for the
// file extension.
func (img *Image) CompressToFile(path, codecName string) error {
	if codecName == "" {
		codecName = filepath.Ext(path)
	}
	data, err := img.Compress(codecName)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DecompressFromFile reads a stream written by CompressToFile. An empty
// codec name selects the codec registered for the file extension.
func DecompressFromFile(path, codecName string) (*Image, error) {
	if codecName == "" {
		codecName = filepath.Ext(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open stream: %w", err)
	}
	return Decompress(data, codecName)
}
