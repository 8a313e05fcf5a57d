package viewer

import (
	"github.com/Carmen-Shannon/volcast/viewer/renderer"
	"github.com/Carmen-Shannon/volcast/viewer/scene"
)

// ViewerBuilderOption configures a Viewer during construction.
type ViewerBuilderOption func(*viewerImpl)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithTitle(title string) ViewerBuilderOption {
	return func(v *viewerImpl) {
		v.title = title
	}
}

// WithSize sets the initial window size in pixels. Non-positive values
// are ignored.
//
// Parameters:
//   - width: the window width in pixels
//   - height: the window height in pixels
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithSize(width, height int) ViewerBuilderOption {
	return func(v *viewerImpl) {
		if width > 0 && height > 0 {
			v.width = width
			v.height = height
		}
	}
}

// WithProfiling enables frame pacing output to the log from startup.
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithProfiling() ViewerBuilderOption {
	return func(v *viewerImpl) {
		v.profilingEnabled = true
	}
}

// WithRendererOptions forwards options to the renderer constructor, for
// example present mode or clear color overrides.
//
// Parameters:
//   - options: the renderer options to forward
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithRendererOptions(options ...renderer.RendererBuilderOption) ViewerBuilderOption {
	return func(v *viewerImpl) {
		v.rendererOptions = append(v.rendererOptions, options...)
	}
}

// WithSceneOptions forwards options to the scene constructor, for example
// the initial dataset and colormap selection or custom stores.
//
// Parameters:
//   - options: the scene options to forward
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithSceneOptions(options ...scene.SceneBuilderOption) ViewerBuilderOption {
	return func(v *viewerImpl) {
		v.sceneOptions = append(v.sceneOptions, options...)
	}
}
