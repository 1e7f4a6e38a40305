package avatar

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodeTestImage(t *testing.T, w, h int, asPNG bool) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	buf := &bytes.Buffer{}
	var err error
	if asPNG {
		err = png.Encode(buf, img)
	} else {
		err = jpeg.Encode(buf, img, nil)
	}
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf
}

func TestProcessCropsSquareAndScales(t *testing.T) {
	out, err := Process(encodeTestImage(t, 1024, 2048, false))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out.Width != MaxDimension || out.Height != MaxDimension {
		t.Fatalf("size = %dx%d, want %dx%d", out.Width, out.Height, MaxDimension, MaxDimension)
	}
	if out.Format != "jpeg" || out.MIMEType != "image/jpeg" {
		t.Fatalf("format = %s (%s)", out.Format, out.MIMEType)
	}
	if len(out.Bytes) == 0 {
		t.Fatal("no encoded bytes")
	}
}

func TestProcessKeepsSmallImagesUnscaled(t *testing.T) {
	out, err := Process(encodeTestImage(t, 64, 64, false))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out.Width != 64 || out.Height != 64 {
		t.Fatalf("size = %dx%d, want 64x64", out.Width, out.Height)
	}
}

func TestProcessPreservesPNG(t *testing.T) {
	out, err := Process(encodeTestImage(t, 100, 80, true))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out.Format != "png" || out.MIMEType != "image/png" {
		t.Fatalf("format = %s (%s), want png", out.Format, out.MIMEType)
	}
	if out.Width != 80 || out.Height != 80 {
		t.Fatalf("size = %dx%d, want square crop 80x80", out.Width, out.Height)
	}
}

func TestProcessRejectsGarbage(t *testing.T) {
	if _, err := Process(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Fatal("expected decode error")
	}
}
