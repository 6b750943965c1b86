package imagefile

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	// imaging registers PNG, JPEG, GIF, BMP and TIFF; WebP is decode-only
	// and has to be registered separately.
	_ "golang.org/x/image/webp"

	"github.com/cocosip/go-grayscale-codec/codec"
)

var (
	_ Decoder = Standard{}
	_ Encoder = Standard{}
)

// Standard implements Decoder and Encoder on top of the regular image
// ecosystem. It reads every format registered with image.Decode (PNG, JPEG,
// GIF, BMP, TIFF, WebP), honoring EXIF orientation, and writes PNG.
type Standard struct{}

// Decode reads an image file and converts it to grayscale samples.
func (Standard) Decode(data []byte) (height, width int, samples []uint8, err error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return 0, 0, nil, fmt.Errorf("%w: image decodes to %dx%d",
			codec.ErrInvalidDimensions, bounds.Dy(), bounds.Dx())
	}

	height, width, samples = Samples(Grayscale(img))
	return height, width, samples, nil
}

// Encode writes grayscale samples as a PNG file.
func (Standard) Encode(height, width int, samples []uint8) ([]byte, error) {
	if height <= 0 || width <= 0 || len(samples) != height*width {
		return nil, fmt.Errorf("%w: %d samples for %dx%d image",
			codec.ErrInvalidDimensions, len(samples), height, width)
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	copy(gray.Pix, samples)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, gray, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
