// Package avatar prepares profile pictures for storage: center square crop,
// downscale, and re-encode with a size budget.
package avatar

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	_ "image/gif" // register gif decoding

	"golang.org/x/image/draw"
)

const (
	// MaxDimension bounds either side of the stored avatar.
	MaxDimension = 512
	// TargetBytes is the size budget jpeg quality stepping aims for.
	TargetBytes = 50 * 1024
	// MinQuality is the floor for jpeg quality stepping.
	MinQuality = 50

	startQuality = 90
	qualityStep  = 10
)

// Processed is the stored form of an uploaded avatar.
type Processed struct {
	Bytes    []byte
	Format   string
	Width    int
	Height   int
	MIMEType string
}

// Process decodes an uploaded image, crops it square from the center, scales
// it down to at most MaxDimension, and re-encodes it. PNG input stays PNG;
// everything else becomes JPEG with quality stepped down toward TargetBytes.
func Process(r io.Reader) (*Processed, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("avatar: decode: %w", err)
	}

	cropped := squareCrop(src)
	scaled := scaleDown(cropped, MaxDimension)
	bounds := scaled.Bounds()

	if format == "png" {
		var buf bytes.Buffer
		if err := png.Encode(&buf, scaled); err != nil {
			return nil, fmt.Errorf("avatar: encode png: %w", err)
		}
		return &Processed{
			Bytes:    buf.Bytes(),
			Format:   "png",
			Width:    bounds.Dx(),
			Height:   bounds.Dy(),
			MIMEType: "image/png",
		}, nil
	}

	data, err := encodeJPEGWithinBudget(scaled)
	if err != nil {
		return nil, err
	}
	return &Processed{
		Bytes:    data,
		Format:   "jpeg",
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		MIMEType: "image/jpeg",
	}, nil
}

func squareCrop(src image.Image) image.Image {
	b := src.Bounds()
	size := b.Dx()
	if b.Dy() < size {
		size = b.Dy()
	}
	offsetX := b.Min.X + (b.Dx()-size)/2
	offsetY := b.Min.Y + (b.Dy()-size)/2
	rect := image.Rect(0, 0, size, size)

	dst := image.NewRGBA(rect)
	draw.Copy(dst, image.Point{}, src, image.Rect(offsetX, offsetY, offsetX+size, offsetY+size), draw.Src, nil)
	return dst
}

func scaleDown(src image.Image, max int) image.Image {
	b := src.Bounds()
	if b.Dx() <= max && b.Dy() <= max {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, max, max))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func encodeJPEGWithinBudget(img image.Image) ([]byte, error) {
	var last []byte
	for quality := startQuality; quality >= MinQuality; quality -= qualityStep {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("avatar: encode jpeg: %w", err)
		}
		last = buf.Bytes()
		if len(last) <= TargetBytes {
			return last, nil
		}
	}
	// Could not reach the budget without dropping below MinQuality; keep the
	// lowest-quality encoding.
	return last, nil
}
