// Package imagefile is the boundary between the grayscale raster store and
// external image file formats. The codec packages never touch an image
// library; everything format-specific funnels through the two small
// interfaces defined here.
package imagefile

import (
	"image"

	"github.com/disintegration/gift"
)

// Decoder turns an encoded image file into grayscale raster samples.
type Decoder interface {
	// Decode reads a complete image file and returns its dimensions and
	// row-major 8-bit grayscale samples.
	Decode(data []byte) (height, width int, samples []uint8, err error)
}

// Encoder turns grayscale raster samples into an encoded image file.
type Encoder interface {
	// Encode writes height*width row-major samples as a complete image file.
	Encode(height, width int, samples []uint8) ([]byte, error)
}

// Grayscale converts any image to 8-bit grayscale with a luminance filter.
// Images that are already grayscale pass through value for value.
func Grayscale(src image.Image) *image.Gray {
	if gray, ok := src.(*image.Gray); ok {
		return gray
	}
	g := gift.New(gift.Grayscale())
	dst := image.NewGray(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}

// Samples flattens a grayscale image into row-major samples.
func Samples(img *image.Gray) (height, width int, samples []uint8) {
	bounds := img.Bounds()
	height, width = bounds.Dy(), bounds.Dx()
	samples = make([]uint8, height*width)
	for y := 0; y < height; y++ {
		off := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(samples[y*width:(y+1)*width], img.Pix[off:off+width])
	}
	return height, width, samples
}
