package lzw

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cocosip/go-grayscale-codec/codec"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		pixels []byte
	}{
		{"single pixel", 1, 1, []byte{42}},
		{"uniform 2x2", 2, 2, codec.UniformPixels(2, 2, 5)},
		{"uniform 8x8", 8, 8, codec.UniformPixels(8, 8, 200)},
		{"run 1x4", 4, 1, []byte{7, 7, 7, 7}},
		{"column 4x1", 1, 4, []byte{9, 9, 3, 9}},
		{"two values", 4, 2, []byte{0, 255, 0, 255, 255, 0, 255, 0}},
		{"full range 16x16", 16, 16, codec.GradientPixels(16, 16)},
		{"gradient 64x64", 64, 64, codec.GradientPixels(64, 64)},
		{"noise 64x64", 64, 64, codec.NoisePixels(64, 64, 1)},
		{"wide 256x1", 256, 1, codec.NoisePixels(256, 1, 2)},
		{"tall 1x256", 1, 256, codec.NoisePixels(1, 256, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := Encode(tt.pixels, tt.width, tt.height)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			t.Logf("Compressed %d pixels to %d bytes (%.2f%%)",
				len(tt.pixels), len(stream), float64(len(stream))*100/float64(len(tt.pixels)))

			decoded, w, h, err := Decode(stream)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if w != tt.width || h != tt.height {
				t.Errorf("Dimensions mismatch: got %dx%d, want %dx%d", h, w, tt.height, tt.width)
			}

			if len(decoded) != len(tt.pixels) {
				t.Fatalf("Data length mismatch: got %d, want %d", len(decoded), len(tt.pixels))
			}

			mismatches := 0
			for i := 0; i < len(tt.pixels); i++ {
				if tt.pixels[i] != decoded[i] {
					mismatches++
					if mismatches <= 5 {
						t.Errorf("Pixel %d mismatch: got %d, want %d", i, decoded[i], tt.pixels[i])
					}
				}
			}
			if mismatches > 0 {
				t.Errorf("Total pixel errors: %d (lossless should have 0 errors)", mismatches)
			}
		})
	}
}

func TestUniformStreamContents(t *testing.T) {
	// A 2x2 raster of a single value compresses to one seed and three codes:
	// the seed, the pending two-symbol entry, and the seed again.
	stream, err := Encode([]byte{5, 5, 5, 5}, 2, 2)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := []byte{
		0x00, 0x02, // height
		0x00, 0x02, // width
		0x00, 0x01, // start dictionary length
		0x05,                   // start dictionary: the single symbol 5
		0x00, 0x00, 0x00, 0x06, // code block length: three codes
		0x00, 0x00, // code 0 -> "5"
		0x00, 0x01, // code 1 -> "55"
		0x00, 0x00, // code 0 -> "5"
	}
	if !bytes.Equal(stream, want) {
		t.Errorf("stream = % x, want % x", stream, want)
	}
}

func TestRunEmitsPendingCode(t *testing.T) {
	// 1x4 of a single value: the second emitted code names the entry the
	// decoder is still defining, forcing the previous-entry-plus-first-symbol
	// reconstruction.
	pixels := []byte{7, 7, 7, 7}
	stream, err := Encode(pixels, 4, 1)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	s, err := parseStream(stream)
	if err != nil {
		t.Fatalf("parseStream failed: %v", err)
	}
	if !bytes.Equal(s.startDict, []byte{7}) {
		t.Errorf("start dictionary = %v, want [7]", s.startDict)
	}
	wantCodes := []uint16{0, 1, 0}
	if len(s.codes) != len(wantCodes) {
		t.Fatalf("codes = %v, want %v", s.codes, wantCodes)
	}
	for i, c := range wantCodes {
		if s.codes[i] != c {
			t.Errorf("code %d = %d, want %d", i, s.codes[i], c)
		}
	}

	decoded, w, h, err := Decode(stream)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if w != 4 || h != 1 {
		t.Errorf("Dimensions mismatch: got %dx%d, want 1x4", h, w)
	}
	if !bytes.Equal(decoded, pixels) {
		t.Errorf("decoded = %v, want %v", decoded, pixels)
	}
}

func TestStartDictionaryFidelity(t *testing.T) {
	// The start dictionary must list exactly the distinct source symbols in
	// ascending order, stored verbatim in the stream.
	pixels := []byte{3, 1, 4, 1, 5, 9, 2, 6}
	stream, err := Encode(pixels, 4, 2)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	s, err := parseStream(stream)
	if err != nil {
		t.Fatalf("parseStream failed: %v", err)
	}

	want := []byte{1, 2, 3, 4, 5, 6, 9}
	if !bytes.Equal(s.startDict, want) {
		t.Errorf("start dictionary = %v, want %v", s.startDict, want)
	}

	// Raw stream bytes, not just the parsed view
	if !bytes.Equal(stream[6:6+len(want)], want) {
		t.Errorf("stream dictionary bytes = %v, want %v", stream[6:6+len(want)], want)
	}
}

func TestFullRangeStartDictionary(t *testing.T) {
	pixels := make([]byte, 256)
	for i := range pixels {
		pixels[i] = byte(i)
	}

	stream, err := Encode(pixels, 16, 16)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	s, err := parseStream(stream)
	if err != nil {
		t.Fatalf("parseStream failed: %v", err)
	}
	if len(s.startDict) != 256 {
		t.Fatalf("start dictionary has %d entries, want 256", len(s.startDict))
	}
	for i, sym := range s.startDict {
		if sym != byte(i) {
			t.Errorf("start dictionary entry %d = %d, want %d", i, sym, i)
		}
	}

	decoded, _, _, err := Decode(stream)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, pixels) {
		t.Error("full range raster did not round-trip")
	}
}

func TestDeterminism(t *testing.T) {
	pixels := codec.NoisePixels(64, 64, 7)

	first, err := Encode(pixels, 64, 64)
	if err != nil {
		t.Fatalf("first Encode failed: %v", err)
	}
	second, err := Encode(pixels, 64, 64)
	if err != nil {
		t.Fatalf("second Encode failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("encoding the same raster twice produced different streams")
	}
}

func TestDictionaryCapRoundTrip(t *testing.T) {
	// Enough noise to push the dictionary past its cap on both sides.
	width, height := 512, 512
	pixels := codec.NoisePixels(width, height, 42)

	startDict := distinctSymbols(pixels)
	table := newEncodeTable(startDict)
	for i := 0; i < len(pixels); {
		code, n, ok := table.longestMatch(pixels, i)
		if !ok {
			t.Fatalf("no match at offset %d", i)
		}
		i += n
		if i < len(pixels) {
			table.add(code, pixels[i])
		}
	}
	if table.size != maxTableSize {
		t.Fatalf("table size = %d, want the raster to fill the cap of %d", table.size, maxTableSize)
	}

	stream, err := Encode(pixels, width, height)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	t.Logf("Capped dictionary: %d pixels -> %d bytes (%.2f%%)",
		len(pixels), len(stream), float64(len(stream))*100/float64(len(pixels)))

	decoded, w, h, err := Decode(stream)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if w != width || h != height {
		t.Fatalf("Dimensions mismatch: got %dx%d, want %dx%d", h, w, height, width)
	}
	if !bytes.Equal(decoded, pixels) {
		t.Error("capped-dictionary raster did not round-trip")
	}
}

func TestCompressionOfRepetitiveData(t *testing.T) {
	// Highly repetitive input must compress well below its raw size.
	width, height := 128, 128
	pixels := codec.UniformPixels(width, height, 77)

	stream, err := Encode(pixels, width, height)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if len(stream) >= len(pixels)/10 {
		t.Errorf("uniform raster compressed to %d bytes, want under %d", len(stream), len(pixels)/10)
	}
	t.Logf("Uniform %dx%d: %d -> %d bytes (%.2fx)",
		height, width, len(pixels), len(stream), float64(len(pixels))/float64(len(stream)))
}

func TestEncodeInvalidParameters(t *testing.T) {
	tests := []struct {
		name    string
		pixels  []byte
		width   int
		height  int
		wantErr bool
	}{
		{"valid", make([]byte, 12), 4, 3, false},
		{"nil pixels", nil, 4, 3, true},
		{"zero width", make([]byte, 12), 0, 3, true},
		{"zero height", make([]byte, 12), 4, 0, true},
		{"negative width", make([]byte, 12), -4, 3, true},
		{"length mismatch", make([]byte, 11), 4, 3, true},
		{"width beyond header", make([]byte, codec.MaxDimension+1), codec.MaxDimension + 1, 1, true},
		{"height beyond header", make([]byte, codec.MaxDimension+1), 1, codec.MaxDimension + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.pixels, tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("Encode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !errors.Is(err, codec.ErrInvalidDimensions) {
				t.Errorf("Encode() error = %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestDecodeCorruptStreams(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"first code outside start dictionary", marshalStream(1, 1, []byte{5}, []uint16{1})},
		{"code beyond next assignable", marshalStream(1, 3, []byte{5}, []uint16{0, 3})},
		{"empty start dictionary with codes", marshalStream(1, 1, nil, []uint16{0})},
		{"too few pixels produced", marshalStream(1, 2, []byte{5}, []uint16{0})},
		{"too many codes for raster", marshalStream(1, 1, []byte{5}, []uint16{0, 0})},
		{"zero height", marshalStream(0, 4, []byte{5}, []uint16{0})},
		{"zero width", marshalStream(4, 0, []byte{5}, []uint16{0})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, err := Decode(tt.data); !errors.Is(err, codec.ErrDecompressionFailure) {
				t.Errorf("Decode() error = %v, want ErrDecompressionFailure", err)
			}
		})
	}
}

func TestDecodeOverflowingEntry(t *testing.T) {
	// Codes that keep extending entries past the declared raster size must
	// fail instead of writing out of range.
	data := marshalStream(1, 4, []byte{5, 6}, []uint16{0, 2, 1, 2})
	if _, _, _, err := Decode(data); !errors.Is(err, codec.ErrDecompressionFailure) {
		t.Errorf("Decode() error = %v, want ErrDecompressionFailure", err)
	}
}

func BenchmarkEncodeGradient(b *testing.B) {
	width, height := 512, 512
	pixels := codec.GradientPixels(width, height)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(pixels, width, height); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeNoise(b *testing.B) {
	width, height := 256, 256
	pixels := codec.NoisePixels(width, height, 11)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(pixels, width, height); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeGradient(b *testing.B) {
	width, height := 512, 512
	pixels := codec.GradientPixels(width, height)

	stream, err := Encode(pixels, width, height)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := Decode(stream); err != nil {
			b.Fatal(err)
		}
	}
}
