// Package viewer is the interactive step-through window for a solved
// puzzle: arrow keys move between steps and a text line at the bottom names
// the current step and the move that produced it; the moved tile is drawn
// like every other tile, with no highlight — generalized from the
// teacher's fixed 12x12 match-3 board viewer to an arbitrary H×W Klotski
// board produced by internal/render.
package viewer

import (
	"fmt"
	"image"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/asig/klotski/internal/engine"
	"github.com/asig/klotski/internal/render"
	"github.com/asig/klotski/internal/state"
	"github.com/asig/klotski/internal/tile"
)

// CellPixels is the native per-cell raster size before the zoom factor is
// applied by the renderer's scaled blit — the teacher's tileW/tileH.
const CellPixels = 16

// Run opens a window and lets the user step through path with the left and
// right arrow keys, 'q' or window-close to exit.
func Run(path []*state.State, e *engine.Engine, zoom int) error {
	if zoom < 1 || zoom > 10 {
		return fmt.Errorf("zoom value must be between 1 and 10")
	}
	if len(path) == 0 {
		return fmt.Errorf("nothing to show: empty path")
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	winW := int32(e.W * CellPixels * zoom)
	winH := int32(e.H*CellPixels*zoom) + 24

	window, err := sdl.CreateWindow("Klotski solver", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		winW, winH, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	textures := make([]*sdl.Texture, len(path))
	for i, s := range path {
		tex, err := textureForStep(renderer, s, e, i)
		if err != nil {
			return err
		}
		textures[i] = tex
	}
	defer func() {
		for _, t := range textures {
			t.Destroy()
		}
	}()

	idx := 0
	running := true
	for running {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch e := ev.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_q:
					running = false
				case sdl.K_RIGHT:
					if idx < len(path)-1 {
						idx++
					}
				case sdl.K_LEFT:
					if idx > 0 {
						idx--
					}
				}
			}
		}

		renderer.Clear()
		renderer.Copy(textures[idx], nil, nil)
		renderer.Present()
	}
	return nil
}

func textureForStep(r *sdl.Renderer, s *state.State, e *engine.Engine, idx int) (*sdl.Texture, error) {
	frame := render.Frame(s, e, CellPixels)
	label := labelFor(s, idx)
	rgba := render.WithLabel(frame, label)

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(rgba.Bounds().Dx()), int32(rgba.Bounds().Dy()), 32, sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surface.Free()
	copyRGBA(surface, rgba)

	tex, err := r.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	return tex, nil
}

func copyRGBA(surface *sdl.Surface, img *image.RGBA) {
	dst := surface.Pixels()
	copy(dst, img.Pix)
}

func labelFor(s *state.State, idx int) string {
	if s.Move == nil {
		return fmt.Sprintf("step %d: initial position", idx)
	}
	return fmt.Sprintf("step %d: tile %d moves %s", idx, s.Move.TileIndex, tile.Direction(s.Move.Dir))
}
