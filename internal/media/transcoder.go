package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"runtime"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/sync/semaphore"

	// WebP uploads are accepted as input; PNG, JPEG and GIF decoders are
	// registered transitively by the imaging package.
	_ "golang.org/x/image/webp"
)

// ErrDecode marks input bytes that could not be decoded as an image.
// Handlers map it to a bad-request response.
var ErrDecode = errors.New("invalid image file")

const webpQuality = 80

// Transcoder converts uploaded images into fixed-size PNG and WebP pairs.
// Decoding, resizing and encoding are CPU-bound, so the amount of
// concurrent work is capped by a weighted semaphore instead of letting
// every request goroutine burn a core at once.
type Transcoder struct {
	sem *semaphore.Weighted
}

func NewTranscoder(workers int) *Transcoder {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Transcoder{sem: semaphore.NewWeighted(int64(workers))}
}

// Transcode decodes src, resizes it to exactly width×height and returns a
// PNG and a WebP encoding of the same RGB intermediate. The source aspect
// ratio is deliberately ignored; mismatched inputs are stretched.
func (t *Transcoder) Transcode(ctx context.Context, src []byte, width, height int) (pngBytes, webpBytes []byte, err error) {
	if err := t.sem.Acquire(ctx, 1); err != nil {
		return nil, nil, err
	}
	defer t.sem.Release(1)

	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	resized := imaging.Resize(img, width, height, imaging.Lanczos)

	// Flatten any alpha channel onto black so both codecs encode the same
	// pixel content.
	rgb := image.NewRGBA(resized.Bounds())
	draw.Draw(rgb, rgb.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(rgb, rgb.Bounds(), resized, resized.Bounds().Min, draw.Over)

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, rgb); err != nil {
		return nil, nil, fmt.Errorf("encode png: %w", err)
	}

	var webpBuf bytes.Buffer
	if err := webp.Encode(&webpBuf, rgb, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, nil, fmt.Errorf("encode webp: %w", err)
	}

	return pngBuf.Bytes(), webpBuf.Bytes(), nil
}
