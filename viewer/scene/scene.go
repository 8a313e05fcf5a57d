// Package scene drives the per-frame render loop: selection tracking,
// resource-set rebuilds, uniform uploads, and the draw submission for the
// volume proxy cube.
package scene

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/volcast/common"
	"github.com/Carmen-Shannon/volcast/viewer/camera"
	"github.com/Carmen-Shannon/volcast/viewer/colormap"
	"github.com/Carmen-Shannon/volcast/viewer/geometry"
	"github.com/Carmen-Shannon/volcast/viewer/renderer"
	"github.com/Carmen-Shannon/volcast/viewer/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/volcast/viewer/renderer/pipeline"
	"github.com/Carmen-Shannon/volcast/viewer/shader"
	"github.com/Carmen-Shannon/volcast/viewer/volume"
	"github.com/cogentcore/webgpu/wgpu"
)

// VolumePipelineKey identifies the ray-cast render pipeline in the
// renderer's pipeline cache.
const VolumePipelineKey = "volume_raycast"

// FrameState reports what the frame loop is doing.
type FrameState int

const (
	// FrameStateIdle means no frame is in flight; the loop is waiting or
	// the window is hidden.
	FrameStateIdle FrameState = iota
	// FrameStateRendering means a frame is being encoded and submitted.
	FrameStateRendering
)

// sceneImpl is the implementation of the Scene interface.
type sceneImpl struct {
	mu sync.Mutex

	r         renderer.Renderer
	cam       camera.Camera
	volumes   volume.Store
	colormaps colormap.Store

	// mesh holds the proxy cube's vertex and index buffers.
	mesh bind_group_provider.BindGroupProvider
	// resources is the currently bound resource set: view uniform, volume
	// texture, colormap texture, sampler, and gradient buffer.
	resources bind_group_provider.BindGroupProvider

	// currentVolume and currentColormap name the resources backing the
	// bound set; pendingVolume and pendingColormap name the selection the
	// next frame should display. A mismatch triggers exactly one rebuild.
	currentVolume, currentColormap string
	pendingVolume, pendingColormap string

	visible bool
	state   FrameState
}

// Scene owns the displayed dataset and colormap selection and produces one
// frame per Step call.
type Scene interface {
	// Camera returns the scene's camera for input wiring and matrix access.
	//
	// Returns:
	//   - camera.Camera: the scene camera
	Camera() camera.Camera

	// VolumeName returns the name of the volume currently bound for display.
	//
	// Returns:
	//   - string: the bound volume name
	VolumeName() string

	// ColormapName returns the name of the colormap currently bound for display.
	//
	// Returns:
	//   - string: the bound colormap name
	ColormapName() string

	// SelectVolume requests a different dataset for the next frame. The GPU
	// rebuild happens inside Step; selecting the same name twice is a no-op.
	//
	// Parameters:
	//   - name: the dataset name to display
	SelectVolume(name string)

	// SelectColormap requests a different transfer function for the next
	// frame. The GPU rebuild happens inside Step.
	//
	// Parameters:
	//   - name: the colormap name to display
	SelectColormap(name string)

	// CycleVolume advances the pending dataset selection to the next name
	// in store order, wrapping at the end.
	CycleVolume()

	// CycleColormap advances the pending colormap selection to the next
	// name in store order, wrapping at the end.
	CycleColormap()

	// SetVisible tells the scene whether the window is visible. While
	// hidden, Step skips all GPU work.
	//
	// Parameters:
	//   - visible: whether the window is currently visible
	SetVisible(visible bool)

	// Visible reports whether the scene currently renders frames. The
	// frame loop uses this to throttle itself while the window is hidden.
	//
	// Returns:
	//   - bool: true when frames are being produced
	Visible() bool

	// State reports the current frame-loop state.
	//
	// Returns:
	//   - FrameState: Idle between frames and while hidden, Rendering during Step
	State() FrameState

	// Resize propagates a new surface size to the renderer and camera.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	//
	// Returns:
	//   - error: an error if the surface could not be reconfigured
	Resize(width, height int) error

	// Step produces one frame: it applies any pending selection change as a
	// single atomic resource-set rebuild, uploads the camera uniform, and
	// encodes, submits, and presents the draw. While hidden it does
	// nothing. A selection naming a missing asset logs the failure and
	// keeps the last-good resource set bound; resource-creation failures
	// are fatal and returned to the caller.
	//
	// Returns:
	//   - error: a fatal error that should stop the frame loop, otherwise nil
	Step() error

	// Release frees all GPU resources held by the scene.
	Release()
}

var _ Scene = &sceneImpl{}

// NewScene builds a scene against the given renderer: it registers the
// ray-cast pipeline, uploads the proxy cube mesh, and binds the initial
// dataset and colormap selection.
//
// Parameters:
//   - r: the renderer to submit GPU work through
//   - options: variadic list of SceneBuilderOption functions to configure the Scene
//
// Returns:
//   - Scene: the constructed scene with its initial resource set bound
//   - error: an error if pipeline, mesh, or initial resource creation fails
func NewScene(r renderer.Renderer, options ...SceneBuilderOption) (Scene, error) {
	s := &sceneImpl{
		r:       r,
		visible: true,
	}
	for _, option := range options {
		option(s)
	}

	if s.volumes == nil {
		s.volumes = volume.NewStore()
	}
	if s.colormaps == nil {
		s.colormaps = colormap.NewStore()
	}
	if s.cam == nil {
		s.cam = camera.NewCamera(camera.WithController(camera.NewCameraController()))
	}

	if s.pendingVolume == "" {
		names := s.volumes.Names()
		if len(names) == 0 {
			return nil, &common.AssetError{Kind: "volume", Name: "(none registered)"}
		}
		s.pendingVolume = names[0]
	}
	if s.pendingColormap == "" {
		names := s.colormaps.Names()
		if len(names) == 0 {
			return nil, &common.AssetError{Kind: "colormap", Name: "(none registered)"}
		}
		s.pendingColormap = names[0]
	}

	// Cull front faces so the proxy cube still rasterizes when the eye is
	// inside it, and blend premultiplied output over the clear color.
	rayCast := pipeline.NewPipeline(VolumePipelineKey,
		pipeline.WithVertexShader(shader.VolumeVertexShader()),
		pipeline.WithFragmentShader(shader.VolumeFragmentShader()),
		pipeline.WithTopology(wgpu.PrimitiveTopologyTriangleStrip),
		pipeline.WithIndexFormat(wgpu.IndexFormatUint16),
		pipeline.WithCullMode(wgpu.CullModeFront),
		pipeline.WithBlendEnabled(true),
		pipeline.WithBlendState(&wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		}),
	)
	if err := r.RegisterPipelines(rayCast); err != nil {
		return nil, err
	}

	s.mesh = bind_group_provider.NewBindGroupProvider("proxy_cube")
	if err := r.InitMeshBuffers(s.mesh, geometry.CubeVertexBytes(), geometry.CubeIndexBytes(), geometry.CubeIndexCount); err != nil {
		s.mesh.Release()
		return nil, err
	}

	set, err := s.buildResourceSet(s.pendingVolume, s.pendingColormap)
	if err != nil {
		s.mesh.Release()
		return nil, err
	}
	s.resources = set
	s.currentVolume = s.pendingVolume
	s.currentColormap = s.pendingColormap
	return s, nil
}

// buildResourceSet assembles a complete new bind group provider for the
// named dataset and colormap. On any failure the partially built provider
// is released, so the caller never observes a half-initialized set.
func (s *sceneImpl) buildResourceSet(volumeName, colormapName string) (bind_group_provider.BindGroupProvider, error) {
	vol, err := s.volumes.Get(volumeName)
	if err != nil {
		return nil, err
	}
	gradients, err := s.volumes.Gradients(volumeName)
	if err != nil {
		return nil, err
	}
	cm, err := s.colormaps.Get(colormapName)
	if err != nil {
		return nil, err
	}

	volumeStaging, err := vol.Staging()
	if err != nil {
		return nil, err
	}
	colormapStaging, err := cm.Staging()
	if err != nil {
		return nil, err
	}

	provider := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("resources/%s/%s", volumeName, colormapName))
	if err := s.r.InitTexture3D(provider, shader.BindingVolume, volumeStaging); err != nil {
		provider.Release()
		return nil, err
	}
	if err := s.r.InitTexture2D(provider, shader.BindingColormap, colormapStaging); err != nil {
		provider.Release()
		return nil, err
	}
	if err := s.r.InitSampler(provider, shader.BindingSampler, common.SamplerStagingData{
		AddressModeU: wgpu.AddressModeClampToEdge,
		AddressModeV: wgpu.AddressModeClampToEdge,
		AddressModeW: wgpu.AddressModeClampToEdge,
		MagFilter:    wgpu.FilterModeLinear,
		MinFilter:    wgpu.FilterModeLinear,
	}); err != nil {
		provider.Release()
		return nil, err
	}

	sizeOverrides := map[int]uint64{shader.BindingGradients: uint64(len(gradients))}
	if err := s.r.InitBindGroup(provider, shader.VolumeBindGroupLayoutDescriptor(), nil, sizeOverrides); err != nil {
		provider.Release()
		return nil, err
	}

	s.r.WriteBuffers([]bind_group_provider.BufferWrite{
		{Provider: provider, Binding: shader.BindingGradients, Data: gradients},
	})
	return provider, nil
}

func (s *sceneImpl) Camera() camera.Camera {
	return s.cam
}

func (s *sceneImpl) VolumeName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentVolume
}

func (s *sceneImpl) ColormapName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentColormap
}

func (s *sceneImpl) SelectVolume(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingVolume = name
}

func (s *sceneImpl) SelectColormap(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingColormap = name
}

func (s *sceneImpl) CycleVolume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingVolume = nextName(s.volumes.Names(), s.pendingVolume)
}

func (s *sceneImpl) CycleColormap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingColormap = nextName(s.colormaps.Names(), s.pendingColormap)
}

// nextName returns the entry after current in names, wrapping around.
// Unknown or empty current falls back to the first entry.
func nextName(names []string, current string) string {
	if len(names) == 0 {
		return current
	}
	for i, n := range names {
		if n == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func (s *sceneImpl) SetVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = visible
}

func (s *sceneImpl) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *sceneImpl) State() FrameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *sceneImpl) Resize(width, height int) error {
	if height > 0 {
		s.cam.SetAspect(float32(width) / float32(height))
	}
	return s.r.Resize(width, height)
}

func (s *sceneImpl) Step() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.visible {
		s.state = FrameStateIdle
		return nil
	}

	// A dataset and colormap change arriving together coalesce into one
	// rebuild covering both.
	if s.pendingVolume != s.currentVolume || s.pendingColormap != s.currentColormap {
		set, err := s.buildResourceSet(s.pendingVolume, s.pendingColormap)
		if err != nil {
			var assetErr *common.AssetError
			if errors.As(err, &assetErr) {
				log.Printf("selection %q/%q rejected, keeping %q/%q: %v",
					s.pendingVolume, s.pendingColormap, s.currentVolume, s.currentColormap, err)
				s.pendingVolume = s.currentVolume
				s.pendingColormap = s.currentColormap
			} else {
				return err
			}
		} else {
			old := s.resources
			s.resources = set
			s.currentVolume = s.pendingVolume
			s.currentColormap = s.pendingColormap
			if old != nil {
				old.Release()
			}
		}
	}

	s.state = FrameStateRendering
	defer func() { s.state = FrameStateIdle }()

	vp := s.cam.Snapshot()
	s.r.WriteBuffers([]bind_group_provider.BufferWrite{
		{Provider: s.resources, Binding: shader.BindingViewParams, Data: vp.Marshal()},
	})

	// Surface acquisition can fail transiently during resizes; skip the
	// frame rather than tearing the loop down.
	if err := s.r.BeginFrame(); err != nil {
		log.Printf("skipping frame: %v", err)
		return nil
	}
	if err := s.r.DrawCall(VolumePipelineKey, s.mesh, 1, []bind_group_provider.BindGroupProvider{s.resources}); err != nil {
		s.r.EndFrame()
		s.r.Present()
		return err
	}
	s.r.EndFrame()
	s.r.Present()
	return nil
}

func (s *sceneImpl) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resources != nil {
		s.resources.Release()
		s.resources = nil
	}
	if s.mesh != nil {
		s.mesh.Release()
		s.mesh = nil
	}
}
