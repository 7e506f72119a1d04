// Package preprocess prepares decoded images for text recognition. The
// pipeline is fixed: grayscale conversion followed by inverted Otsu
// binarization, which drives text pixels to the foreground value.
package preprocess

import (
	"image"
	"image/color"
)

const (
	foreground = 255
	background = 0
)

// Grayscale converts src to an 8-bit grayscale image using the standard
// luminance weights (0.299 R, 0.587 G, 0.114 B).
func Grayscale(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		out := image.NewGray(g.Bounds())
		for y := 0; y < out.Rect.Dy(); y++ {
			off := g.PixOffset(g.Rect.Min.X, g.Rect.Min.Y+y)
			copy(out.Pix[y*out.Stride:y*out.Stride+out.Rect.Dx()], g.Pix[off:])
		}
		return out
	}
	b := src.Bounds()
	dst := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := src.At(x, y).RGBA()
			// Channels are 16-bit here; scale back to 8 bits after weighting.
			lum := (299*r + 587*g + 114*bl) / 1000
			dst.SetGray(x, y, color.Gray{Y: uint8(lum >> 8)})
		}
	}
	return dst
}

// OtsuLevel computes the Otsu threshold for a grayscale image: the cutoff
// that maximizes the between-class variance of foreground and background
// pixel populations.
func OtsuLevel(img *image.Gray) uint8 {
	var hist [256]int
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		for _, v := range img.Pix[off : off+b.Dx()] {
			hist[v]++
		}
	}

	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var (
		sumB, wB  float64
		best      float64
		threshold uint8
	)
	for i := 0; i < 256; i++ {
		wB += float64(hist[i])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(i) * float64(hist[i])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > best {
			best = between
			threshold = uint8(i)
		}
	}
	return threshold
}

// Binarize applies an inverted threshold: pixels at or below level become
// foreground (255) and brighter pixels become background (0). Inversion is
// intentional — dark text on a light page ends up as foreground, which the
// recognition engine handles better for screenshot sources.
func Binarize(img *image.Gray, level uint8) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(b)
	for y := 0; y < b.Dy(); y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		src := img.Pix[off : off+b.Dx()]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+b.Dx()]
		for x, v := range src {
			if v > level {
				out[x] = background
			} else {
				out[x] = foreground
			}
		}
	}
	return dst
}

// Preprocess runs the full pipeline on a decoded image and returns a binary
// image with the same spatial dimensions. The output is deterministic for a
// given input.
func Preprocess(src image.Image) *image.Gray {
	gray := Grayscale(src)
	return Binarize(gray, OtsuLevel(gray))
}
