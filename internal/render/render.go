// Package render turns a search State into a grayscale raster image, the
// way the original solver's output_image function does: one inner square
// per cell plus edge/corner fill between adjacent same-tile cells, walls
// darkest, empty cells lightest, goal and non-goal tiles in distinct
// shades.
package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/asig/klotski/internal/engine"
	"github.com/asig/klotski/internal/state"
)

// DefaultCellPixels is IC from the original source: pixels per board cell.
const DefaultCellPixels = 40

const (
	wallShade    = 0x00
	emptyShade   = 0xFF
	goalShade    = 0xC0
	nonGoalShade = 0x80
)

// cellOwner builds, for every board cell, the index+1 of the tile instance
// occupying it (0 for empty, -1 for wall), so cells belonging to the same
// tile instance — not merely the same type tag — get their edges and
// corners filled together, exactly as the original's per-tile `grid` pass
// does.
func cellOwner(s *state.State, e *engine.Engine) []int {
	owner := make([]int, s.W*s.H)
	for p, c := range s.Board {
		switch c {
		case state.EmptyTag:
			owner[p] = 0
		case state.WallTag:
			owner[p] = -1
		}
	}
	for i, tp := range s.Tiles {
		for _, delta := range tp.Desc.Cells {
			owner[tp.P+delta] = i + 1
		}
	}
	return owner
}

func shadeFor(owner int, e *engine.Engine) byte {
	switch {
	case owner == -1:
		return wallShade
	case owner == 0:
		return emptyShade
	case owner-1 < e.NumGoal:
		return goalShade
	default:
		return nonGoalShade
	}
}

// Frame rasterizes one state at cellPixels pixels per board cell.
func Frame(s *state.State, e *engine.Engine, cellPixels int) *image.Gray {
	owner := cellOwner(s, e)
	w, h := s.W, s.H
	img := image.NewGray(image.Rect(0, 0, w*cellPixels, h*cellPixels))

	at := func(x, y int) int {
		if x < 0 || y < 0 || x >= w || y >= h {
			return -2 // outside the board: never equal to a real owner
		}
		return owner[y*w+x]
	}

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			c := shadeFor(at(px, py), e)
			ic := cellPixels
			x0, y0 := px*ic, py*ic

			// inner square, inset by one pixel on every side
			for y := y0 + 1; y < y0+ic-1; y++ {
				for x := x0 + 1; x < x0+ic-1; x++ {
					img.SetGray(x, y, color.Gray{Y: c})
				}
			}
			// edges joining same-tile neighbors
			if at(px, py-1) == at(px, py) {
				for x := x0 + 1; x < x0+ic-1; x++ {
					img.SetGray(x, y0, color.Gray{Y: c})
				}
			}
			if at(px-1, py) == at(px, py) {
				for y := y0 + 1; y < y0+ic-1; y++ {
					img.SetGray(x0, y, color.Gray{Y: c})
				}
			}
			if at(px, py+1) == at(px, py) {
				for x := x0 + 1; x < x0+ic-1; x++ {
					img.SetGray(x, y0+ic-1, color.Gray{Y: c})
				}
			}
			if at(px+1, py) == at(px, py) {
				for y := y0 + 1; y < y0+ic-1; y++ {
					img.SetGray(x0+ic-1, y, color.Gray{Y: c})
				}
			}
			// inner corner, when all four cells of the 2x2 block match
			if at(px, py) == at(px+1, py) && at(px, py) == at(px, py+1) && at(px, py) == at(px+1, py+1) {
				img.SetGray(x0+ic-1, y0+ic-1, color.Gray{Y: c})
				img.SetGray(x0+ic, y0+ic-1, color.Gray{Y: c})
				img.SetGray(x0+ic-1, y0+ic, color.Gray{Y: c})
				img.SetGray(x0+ic, y0+ic, color.Gray{Y: c})
			}
		}
	}
	return img
}

// SavePGM writes img in the original solver's raw P5 PGM format.
func SavePGM(img *image.Gray, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	b := img.Bounds()
	fmt.Fprintf(w, "P5\n%d %d\n255\n", b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		w.Write(img.Pix[(y-b.Min.Y)*img.Stride : (y-b.Min.Y)*img.Stride+b.Dx()])
	}
	return w.Flush()
}

// SaveBMP writes a labeled frame as BMP, offered alongside the native PGM
// writer so a frame sequence can be inspected without a PGM-aware viewer.
func SaveBMP(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bmp.Encode(f, img)
}

// WithLabel composites a one-line label (e.g. "step 3 of 81: move A down")
// under a copy of a grayscale frame, using a built-in bitmap font so no
// font asset needs to ship with the binary.
func WithLabel(img *image.Gray, label string) *image.RGBA {
	b := img.Bounds()
	const margin = 16
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+margin))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.GrayAt(x, y))
		}
	}
	bg := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	for y := b.Dy(); y < b.Dy()+margin; y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Set(x, y, bg)
		}
	}
	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, b.Dy()+margin-4),
	}
	d.DrawString(label)
	return out
}
