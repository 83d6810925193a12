package render

import (
	"image"
	"image/color"
)

// resizeGray nearest-neighbor resamples src into a wDst x hDst gray image,
// using the same fixed-point (16.16) step-accumulation scheme as a
// dedicated image-downscaling library's NN resampler: step the source
// coordinate by (srcLen<<shift)/dstLen per destination pixel instead of
// doing a division per pixel. It works for both shrinking and growing,
// since the accumulator doesn't assume srcLen >= dstLen.
func resizeGray(src *image.Gray, wDst, hDst int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, wDst, hDst))
	if wDst <= 0 || hDst <= 0 {
		return dst
	}
	b := src.Bounds()
	wSrc, hSrc := b.Dx(), b.Dy()
	if wSrc <= 0 || hSrc <= 0 {
		return dst
	}

	const shift = 16
	xStep := (wSrc << shift) / wDst
	xHalf := xStep >> 1
	yStep := (hSrc << shift) / hDst
	yHalf := yStep >> 1

	yFP := yHalf
	for dy := 0; dy < hDst; dy++ {
		sy := b.Min.Y + (yFP >> shift)
		xFP := xHalf
		for dx := 0; dx < wDst; dx++ {
			sx := b.Min.X + (xFP >> shift)
			dst.SetGray(dx, dy, src.GrayAt(sx, sy))
			xFP += xStep
		}
		yFP += yStep
	}
	return dst
}

// ContactSheet tiles a solution's frames into a single grid image, each
// frame resampled down to thumbCellPixels per board cell, so a whole
// solution can be previewed without opening every per-step frame.
func ContactSheet(frames []*image.Gray, boardW, boardH, thumbCellPixels, columns int) *image.Gray {
	if len(frames) == 0 || columns <= 0 {
		return image.NewGray(image.Rect(0, 0, 1, 1))
	}
	tw, th := boardW*thumbCellPixels, boardH*thumbCellPixels
	rows := (len(frames) + columns - 1) / columns
	const pad = 2
	sheet := image.NewGray(image.Rect(0, 0, columns*(tw+pad)+pad, rows*(th+pad)+pad))
	fillGray(sheet, color.Gray{Y: 0x40})

	for i, f := range frames {
		thumb := resizeGray(f, tw, th)
		col, row := i%columns, i/columns
		x0, y0 := pad+col*(tw+pad), pad+row*(th+pad)
		for y := 0; y < th; y++ {
			for x := 0; x < tw; x++ {
				sheet.SetGray(x0+x, y0+y, thumb.GrayAt(x, y))
			}
		}
	}
	return sheet
}

func fillGray(img *image.Gray, c color.Gray) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetGray(x, y, c)
		}
	}
}
