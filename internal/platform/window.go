package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"ballattax/internal/config"
	"ballattax/internal/gfx"
)

func initWindow(cfg config.Window) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	w, h := cfg.Width, cfg.Height
	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if mode := monitor.GetVideoMode(); mode != nil {
			w, h = mode.Width, mode.Height
		}
	}

	window, err := glfw.CreateWindow(w, h, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

// host exposes the window to scenes.
type host struct {
	win   *glfw.Window
	clear gfx.RGBA
}

func (h *host) Size() (int, int) { return h.win.GetSize() }

func (h *host) SetClearColor(c gfx.RGBA) { h.clear = c }
