// Package viewer ties the window, renderer, camera, and scene together
// into an interactive volume viewer.
package viewer

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/volcast/viewer/profiler"
	"github.com/Carmen-Shannon/volcast/viewer/renderer"
	"github.com/Carmen-Shannon/volcast/viewer/scene"
	"github.com/Carmen-Shannon/volcast/viewer/window"
)

// viewerImpl implements the Viewer interface.
// Coordinates the frame goroutine and the main-thread message loop.
type viewerImpl struct {
	wg          sync.WaitGroup
	quitChannel chan struct{}
	quitOnce    sync.Once

	win window.Window
	r   renderer.Renderer
	scn scene.Scene

	prof             *profiler.Profiler
	profilingEnabled bool

	// frameLimit is the minimum frame duration; 0 = uncapped.
	frameLimit time.Duration

	// Drag state, touched only from the main thread's input callbacks.
	leftDown, rightDown, shiftDown bool
	lastX, lastY                   int32

	// Construction-time config collected from builder options.
	title           string
	width, height   int
	rendererOptions []renderer.RendererBuilderOption
	sceneOptions    []scene.SceneBuilderOption
}

// Viewer is the top-level entry point: it owns the window, the renderer,
// and the scene, and runs the frame loop until the window closes.
type Viewer interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the scene holding the active selection and camera.
	//
	// Returns:
	//   - scene.Scene: the scene instance
	Scene() scene.Scene

	// EnableProfiler enables frame pacing output to the log.
	EnableProfiler()

	// DisableProfiler disables frame pacing output.
	DisableProfiler()

	// SetFrameLimit caps the frame loop at the given frames per second.
	// Pass 0 to uncap (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Run starts the frame goroutine and blocks in the window's message
	// loop until the window closes or Quit is called.
	Run()

	// Quit signals the frame goroutine to stop and closes the window.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Viewer = &viewerImpl{}

// NewViewer creates the window, acquires the GPU, and builds the scene
// with its initial dataset and colormap bound. Input callbacks are wired
// so the left button orbits, the right button pans, the scroll wheel
// zooms, and the V and C keys cycle the dataset and colormap.
//
// Parameters:
//   - options: variadic list of ViewerBuilderOption functions to configure the Viewer
//
// Returns:
//   - Viewer: the constructed viewer, ready to Run
//   - error: an error if window, GPU, or scene construction fails
func NewViewer(options ...ViewerBuilderOption) (Viewer, error) {
	v := &viewerImpl{
		quitChannel: make(chan struct{}),
		prof:        profiler.NewProfiler(),
		title:       "volcast",
		width:       1280,
		height:      720,
	}
	for _, option := range options {
		option(v)
	}

	v.win = window.NewWindow(
		window.WithTitle(v.title),
		window.WithWidth(v.width),
		window.WithHeight(v.height),
	)

	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, v.win, v.rendererOptions...)
	if err != nil {
		return nil, err
	}
	v.r = r

	scn, err := scene.NewScene(r, v.sceneOptions...)
	if err != nil {
		return nil, err
	}
	v.scn = scn

	v.wireInput()
	return v, nil
}

// wireInput connects window events to the camera controller and the
// scene's selection and lifecycle methods.
func (v *viewerImpl) wireInput() {
	ctrl := v.scn.Camera().Controller()

	v.win.SetResizeCallback(func(width, height int) {
		if err := v.scn.Resize(width, height); err != nil {
			log.Printf("resize to %dx%d failed: %v", width, height, err)
		}
	})

	v.win.SetVisibilityCallback(func(visible bool) {
		v.scn.SetVisible(visible)
	})

	v.win.SetMouseDownCallback(func(button window.MouseButton, x, y int32) {
		switch button {
		case window.MouseButtonLeft:
			v.leftDown = true
		case window.MouseButtonRight:
			v.rightDown = true
		}
		v.lastX, v.lastY = x, y
	})

	v.win.SetMouseUpCallback(func(button window.MouseButton, x, y int32) {
		switch button {
		case window.MouseButtonLeft:
			v.leftDown = false
		case window.MouseButtonRight:
			v.rightDown = false
		}
	})

	v.win.SetMouseMoveCallback(func(x, y int32) {
		if ctrl == nil {
			return
		}
		// Shift turns a left drag into a pan for single-button mice.
		if v.rightDown || (v.leftDown && v.shiftDown) {
			ctrl.Pan(float32(x-v.lastX), float32(y-v.lastY))
		} else if v.leftDown {
			ctrl.Rotate(float32(v.lastX), float32(v.lastY), float32(x), float32(y))
		}
		v.lastX, v.lastY = x, y
	})

	v.win.SetScrollCallback(func(delta float32) {
		if ctrl != nil {
			ctrl.Zoom(delta)
		}
	})

	v.win.SetKeyUpCallback(func(keyCode uint32) {
		if keyCode == window.KeyLeftShift || keyCode == window.KeyRightShift {
			v.shiftDown = false
		}
	})

	v.win.SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case window.KeyLeftShift, window.KeyRightShift:
			v.shiftDown = true
		case window.KeyV:
			v.scn.CycleVolume()
		case window.KeyC:
			v.scn.CycleColormap()
		case window.KeySpace:
			if ctrl != nil {
				ctrl.SetAzimuth(0)
				ctrl.SetElevation(0)
				ctrl.SetRadius(2.0)
				ctrl.SetTarget(0, 0, 0)
			}
		}
	})
}

func (v *viewerImpl) Window() window.Window {
	return v.win
}

func (v *viewerImpl) Scene() scene.Scene {
	return v.scn
}

func (v *viewerImpl) EnableProfiler() {
	v.profilingEnabled = true
}

func (v *viewerImpl) DisableProfiler() {
	v.profilingEnabled = false
}

func (v *viewerImpl) SetFrameLimit(fps float64) {
	if fps <= 0 {
		v.frameLimit = 0
		return
	}
	v.frameLimit = time.Second / time.Duration(fps)
}

func (v *viewerImpl) Run() {
	v.wg.Add(1)
	go v.handleFrames()

	// The message loop must run on the main thread; it blocks until the
	// window closes.
	v.win.ProcessMessages()

	v.signalQuit()
	v.wg.Wait()
	v.scn.Release()
}

func (v *viewerImpl) Quit() {
	v.signalQuit()
	v.win.Close()
}

// signalQuit closes the quit channel exactly once.
func (v *viewerImpl) signalQuit() {
	v.quitOnce.Do(func() {
		close(v.quitChannel)
	})
}

// handleFrames runs the frame loop in its own goroutine. Each iteration
// delegates the full frame lifecycle to the scene; a fatal scene error
// stops the loop and closes the window. Panics are recovered so a GPU
// fault cannot take down the process without cleanup.
func (v *viewerImpl) handleFrames() {
	defer v.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("frame goroutine recovered from panic: %v", r)
			v.signalQuit()
		}
	}()

	for {
		select {
		case <-v.quitChannel:
			return
		default:
			frameStart := time.Now()

			if err := v.scn.Step(); err != nil {
				log.Printf("frame loop stopping: %v", err)
				v.signalQuit()
				v.win.Close()
				return
			}

			// A hidden scene steps without GPU work or a blocking present,
			// so sleep instead of spinning until visibility returns.
			if !v.scn.Visible() {
				time.Sleep(50 * time.Millisecond)
				continue
			}

			if v.profilingEnabled && v.prof != nil {
				v.prof.Tick()
			}

			if v.frameLimit > 0 {
				if remaining := v.frameLimit - time.Since(frameStart); remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}
