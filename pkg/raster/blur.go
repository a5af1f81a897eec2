package raster

import (
	"image"
	"math"
)

// gaussianKernel returns a normalized 1D kernel covering three sigmas on
// each side.
func gaussianKernel(sigma float64) []float64 {
	radius := int(math.Ceil(sigma * 3))
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range kernel {
		x := float64(i - radius)
		kernel[i] = math.Exp(-(x * x) / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// blurAlpha applies a separable gaussian blur to mask in place. Samples
// outside the mask count as transparent.
func blurAlpha(mask *image.Alpha, sigma float64) {
	if sigma <= 0 {
		return
	}
	kernel := gaussianKernel(sigma)
	half := len(kernel) / 2
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	tmp := make([]float64, w*h)
	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride:]
		for x := 0; x < w; x++ {
			acc := 0.0
			for k, weight := range kernel {
				sx := x + k - half
				if sx < 0 || sx >= w {
					continue
				}
				acc += float64(row[sx]) * weight
			}
			tmp[y*w+x] = acc
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			acc := 0.0
			for k, weight := range kernel {
				sy := y + k - half
				if sy < 0 || sy >= h {
					continue
				}
				acc += tmp[sy*w+x] * weight
			}
			mask.Pix[y*mask.Stride+x] = uint8(math.Min(255, math.Round(acc)))
		}
	}
}
