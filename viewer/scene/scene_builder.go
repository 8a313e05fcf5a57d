package scene

import (
	"github.com/Carmen-Shannon/volcast/viewer/camera"
	"github.com/Carmen-Shannon/volcast/viewer/colormap"
	"github.com/Carmen-Shannon/volcast/viewer/volume"
)

// SceneBuilderOption configures a Scene during construction.
type SceneBuilderOption func(*sceneImpl)

// WithCamera sets the camera the scene renders with. When omitted a
// default orbit camera is created.
//
// Parameters:
//   - cam: the camera to use
//
// Returns:
//   - SceneBuilderOption: the option to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.cam = cam
	}
}

// WithVolumeStore sets the dataset store the scene selects from. When
// omitted a store with the built-in procedural datasets is created.
//
// Parameters:
//   - store: the volume store to use
//
// Returns:
//   - SceneBuilderOption: the option to apply
func WithVolumeStore(store volume.Store) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.volumes = store
	}
}

// WithColormapStore sets the transfer-function store the scene selects
// from. When omitted a store with the built-in maps is created.
//
// Parameters:
//   - store: the colormap store to use
//
// Returns:
//   - SceneBuilderOption: the option to apply
func WithColormapStore(store colormap.Store) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.colormaps = store
	}
}

// WithInitialVolume sets the dataset bound when the scene is created.
// When omitted the store's first dataset is used.
//
// Parameters:
//   - name: the dataset name
//
// Returns:
//   - SceneBuilderOption: the option to apply
func WithInitialVolume(name string) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.pendingVolume = name
	}
}

// WithInitialColormap sets the colormap bound when the scene is created.
// When omitted the store's first colormap is used.
//
// Parameters:
//   - name: the colormap name
//
// Returns:
//   - SceneBuilderOption: the option to apply
func WithInitialColormap(name string) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.pendingColormap = name
	}
}
