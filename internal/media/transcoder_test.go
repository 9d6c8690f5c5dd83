package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestTranscodeResizesToExactDimensions(t *testing.T) {
	tr := NewTranscoder(1)

	pngBytes, webpBytes, err := tr.Transcode(context.Background(), testPNG(t, 500, 500), 400, 400)
	if err != nil {
		t.Fatalf("transcode: %v", err)
	}

	if w, h := decodeDims(t, pngBytes); w != 400 || h != 400 {
		t.Fatalf("expected 400x400 png, got %dx%d", w, h)
	}
	if w, h := decodeDims(t, webpBytes); w != 400 || h != 400 {
		t.Fatalf("expected 400x400 webp, got %dx%d", w, h)
	}
}

func TestTranscodeIgnoresAspectRatio(t *testing.T) {
	tr := NewTranscoder(1)

	// A square source stretched to banner dimensions.
	pngBytes, webpBytes, err := tr.Transcode(context.Background(), testPNG(t, 300, 300), 1200, 360)
	if err != nil {
		t.Fatalf("transcode: %v", err)
	}

	if w, h := decodeDims(t, pngBytes); w != 1200 || h != 360 {
		t.Fatalf("expected 1200x360 png, got %dx%d", w, h)
	}
	if w, h := decodeDims(t, webpBytes); w != 1200 || h != 360 {
		t.Fatalf("expected 1200x360 webp, got %dx%d", w, h)
	}
}

func TestTranscodeDeterministic(t *testing.T) {
	tr := NewTranscoder(2)
	src := testPNG(t, 64, 64)

	png1, webp1, err := tr.Transcode(context.Background(), src, 400, 400)
	if err != nil {
		t.Fatalf("first transcode: %v", err)
	}
	png2, webp2, err := tr.Transcode(context.Background(), src, 400, 400)
	if err != nil {
		t.Fatalf("second transcode: %v", err)
	}

	if !bytes.Equal(png1, png2) {
		t.Fatal("png output differs between identical inputs")
	}
	if !bytes.Equal(webp1, webp2) {
		t.Fatal("webp output differs between identical inputs")
	}
}

func TestTranscodeRejectsNonImage(t *testing.T) {
	tr := NewTranscoder(1)

	_, _, err := tr.Transcode(context.Background(), []byte("this is not an image"), 400, 400)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestTranscodeHonorsCancelledContext(t *testing.T) {
	tr := NewTranscoder(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := tr.Transcode(ctx, testPNG(t, 10, 10), 400, 400)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if errors.Is(err, ErrDecode) {
		t.Fatalf("cancellation must not look like a decode failure: %v", err)
	}
}
