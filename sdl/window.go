package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/lifesim/util"
)

// Window displays the board, one texture pixel per cell. It keeps its own
// pixel mirror driven by FlipPixel; it never touches the engine's buffers.
type Window struct {
	Width, Height int32
	window        *sdl.Window
	renderer      *sdl.Renderer
	texture       *sdl.Texture
	pixels        []byte
}

// NewWindow creates an SDL window of the given board dimensions.
func NewWindow(width, height int32) *Window {
	err := sdl.Init(sdl.INIT_VIDEO)
	util.Check(err)

	window, err := sdl.CreateWindow(
		"Game of Life",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_ALLOW_HIGHDPI)
	util.Check(err)

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	util.Check(err)

	err = renderer.SetLogicalSize(width, height)
	util.Check(err)

	texture, err := renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_RGBA8888), sdl.TEXTUREACCESS_STATIC, width, height)
	util.Check(err)

	return &Window{
		Width:    width,
		Height:   height,
		window:   window,
		renderer: renderer,
		texture:  texture,
		pixels:   make([]byte, width*height*4),
	}
}

// Destroy closes the window and releases all SDL resources.
func (w *Window) Destroy() {
	_ = w.texture.Destroy()
	_ = w.renderer.Destroy()
	_ = w.window.Destroy()
	sdl.Quit()
}

// RenderFrame uploads the pixel mirror and presents it.
func (w *Window) RenderFrame() {
	err := w.texture.Update(nil, w.pixels, int(w.Width)*4)
	util.Check(err)
	err = w.renderer.Copy(w.texture, nil, nil)
	util.Check(err)
	w.renderer.Present()
}

// FlipPixel inverts the cell at (x, y) in the pixel mirror.
func (w *Window) FlipPixel(x, y int) {
	offset := 4 * (int32(y)*w.Width + int32(x))
	w.pixels[offset] = ^w.pixels[offset]
	w.pixels[offset+1] = ^w.pixels[offset+1]
	w.pixels[offset+2] = ^w.pixels[offset+2]
	w.pixels[offset+3] = 0xFF
}

// PollEvent drains pending SDL events and returns the key pressed, if any.
// A window close is reported as 'q'.
func (w *Window) PollEvent() rune {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return 'q'
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_p:
				return 'p'
			case sdl.K_s:
				return 's'
			case sdl.K_q:
				return 'q'
			}
		}
	}
	return 0
}
