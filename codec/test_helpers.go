package codec

// Synthetic rasters shared by codec tests and benchmarks.

// UniformPixels returns a width*height raster with every pixel set to v.
func UniformPixels(width, height int, v byte) []byte {
	pixels := make([]byte, width*height)
	for i := range pixels {
		pixels[i] = v
	}
	return pixels
}

// GradientPixels returns a width*height raster with a diagonal gradient,
// the pattern used throughout the codec round-trip tests.
func GradientPixels(width, height int) []byte {
	pixels := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = byte((x + y) * 2)
		}
	}
	return pixels
}

// NoisePixels returns a width*height raster filled from a small linear
// congruential generator. The same seed always produces the same raster,
// so tests stay reproducible.
func NoisePixels(width, height int, seed uint32) []byte {
	pixels := make([]byte, width*height)
	state := seed
	for i := range pixels {
		state = state*1664525 + 1013904223
		pixels[i] = byte(state >> 24)
	}
	return pixels
}
