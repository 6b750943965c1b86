// Package main checks the quality of the LZW compression. For each input
// image it verifies the stream round-trips exactly, reports the stream size
// next to the raw container and a few general-purpose compressors, and
// optionally writes the stream plus the reconstructed grayscale PNG.
package main

import (
	"bytes"
	stdlzw "compress/lzw"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/nfnt/resize"

	"github.com/cocosip/go-grayscale-codec/codec"
	"github.com/cocosip/go-grayscale-codec/grayscale"
	_ "github.com/cocosip/go-grayscale-codec/lzw"
	_ "github.com/cocosip/go-grayscale-codec/raw"
)

func main() {
	targetHeight := flag.Int("height", 0, "resize inputs to this height before compressing (0 keeps the original size)")
	outDir := flag.String("out", "", "directory for the .glz streams and reconstructed PNGs")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-height N] [-out dir] chess.png mountain.png ...\n", os.Args[0])
		os.Exit(1)
	}

	for i, path := range flag.Args() {
		if i > 0 {
			fmt.Println()
		}
		if err := checkQuality(path, *targetHeight, *outDir); err != nil {
			log.Fatalf("%s: %v", path, err)
		}
	}
}

func checkQuality(path string, targetHeight int, outDir string) error {
	img, err := grayscale.Open(path)
	if err != nil {
		return err
	}
	if targetHeight > 0 && targetHeight != img.Height() {
		resized := resize.Resize(0, uint(targetHeight), img.GrayImage(), resize.Lanczos3)
		if img, err = grayscale.FromImage(resized); err != nil {
			return err
		}
	}

	pixels := img.Buffer().Pixels()
	fmt.Printf("%s: %dx%d, %d pixels\n", path, img.Height(), img.Width(), len(pixels))

	params := codec.EncodeParams{
		Pixels: pixels,
		Width:  img.Width(),
		Height: img.Height(),
	}

	lzwCodec, err := codec.Get("lzw")
	if err != nil {
		return err
	}
	stream, err := lzwCodec.Encode(params)
	if err != nil {
		return err
	}

	// Verify the reconstruction before reporting any numbers.
	result, err := lzwCodec.Decode(stream)
	if err != nil {
		return err
	}
	if !bytes.Equal(result.Pixels, pixels) {
		return fmt.Errorf("lzw round trip altered the pixels")
	}

	rawCodec, err := codec.Get("raw")
	if err != nil {
		return err
	}
	rawStream, err := rawCodec.Encode(params)
	if err != nil {
		return err
	}

	stdSize, err := stdLZWSize(pixels)
	if err != nil {
		return err
	}
	zstdOut, err := zstdSize(pixels)
	if err != nil {
		return err
	}
	flateOut, err := flateSize(pixels)
	if err != nil {
		return err
	}

	report("raw container", len(rawStream), len(pixels))
	report("lzw stream", len(stream), len(pixels))
	report("compress/lzw", stdSize, len(pixels))
	report("flate", flateOut, len(pixels))
	report("zstd", zstdOut, len(pixels))
	fmt.Println("  round trip: exact")

	if outDir == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	streamPath := filepath.Join(outDir, base+".glz")
	if err := os.WriteFile(streamPath, stream, 0644); err != nil {
		return err
	}

	restored, err := grayscale.DecompressFromFile(streamPath, "")
	if err != nil {
		return err
	}
	pngPath := filepath.Join(outDir, base+"_grayscale.png")
	if err := restored.Save(pngPath); err != nil {
		return err
	}
	fmt.Printf("  wrote %s and %s\n", streamPath, pngPath)
	return nil
}

func report(name string, size, rawSize int) {
	fmt.Printf("  %-14s %9d bytes (%6.2f%%)\n", name, size, float64(size)*100/float64(rawSize))
}

// stdLZWSize measures the stdlib GIF-variant LZW for comparison. Its
// bitstream has nothing in common with this repo's stream format.
func stdLZWSize(data []byte) (int, error) {
	var buf bytes.Buffer
	w := stdlzw.NewWriter(&buf, stdlzw.LSB, 8)
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func flateSize(data []byte) (int, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func zstdSize(data []byte) (int, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return 0, err
	}
	defer enc.Close()
	return len(enc.EncodeAll(data, nil)), nil
}
