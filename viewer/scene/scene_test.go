package scene

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/volcast/common"
	"github.com/Carmen-Shannon/volcast/viewer/renderer"
	"github.com/Carmen-Shannon/volcast/viewer/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/volcast/viewer/renderer/pipeline"
	"github.com/Carmen-Shannon/volcast/viewer/volume"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records the call sequence so tests can assert frame
// ordering without a GPU.
type fakeRenderer struct {
	events    []string
	pipelines map[string]pipeline.Pipeline

	bindGroupErr error
	beginErr     error
}

var _ renderer.Renderer = &fakeRenderer{}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{pipelines: make(map[string]pipeline.Pipeline)}
}

func (f *fakeRenderer) record(event string) {
	f.events = append(f.events, event)
}

func (f *fakeRenderer) reset() {
	f.events = nil
}

func (f *fakeRenderer) count(event string) int {
	n := 0
	for _, e := range f.events {
		if e == event {
			n++
		}
	}
	return n
}

func (f *fakeRenderer) Pipeline(key string) pipeline.Pipeline {
	return f.pipelines[key]
}

func (f *fakeRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		f.record("register_pipeline")
		f.pipelines[p.PipelineKey()] = p
	}
	return nil
}

func (f *fakeRenderer) Resize(width, height int) error {
	f.record("resize")
	return nil
}

func (f *fakeRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	f.record("init_mesh")
	provider.SetIndexCount(indexCount)
	return nil
}

func (f *fakeRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	if f.bindGroupErr != nil {
		return f.bindGroupErr
	}
	f.record("init_bind_group")
	return nil
}

func (f *fakeRenderer) InitTexture3D(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.Texture3DStagingData) error {
	f.record("init_texture3d")
	return nil
}

func (f *fakeRenderer) InitTexture2D(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.Texture2DStagingData) error {
	f.record("init_texture2d")
	return nil
}

func (f *fakeRenderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	f.record("init_sampler")
	return nil
}

func (f *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.record("write_buffers")
}

func (f *fakeRenderer) BeginFrame() error {
	if f.beginErr != nil {
		return f.beginErr
	}
	f.record("begin_frame")
	return nil
}

func (f *fakeRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	f.record("draw:" + pipelineKey)
	return nil
}

func (f *fakeRenderer) EndFrame() {
	f.record("end_frame")
}

func (f *fakeRenderer) Present() {
	f.record("present")
}

func (f *fakeRenderer) SetPresentMode(mode renderer.PresentMode) {}

func (f *fakeRenderer) SetClearColor(r, g, b, a float64) {}

func testSceneOptions() []SceneBuilderOption {
	return []SceneBuilderOption{
		WithVolumeStore(volume.NewStore(volume.WithResolution(8), volume.WithSynthesisWorkers(1))),
	}
}

func TestNewSceneBindsInitialSelection(t *testing.T) {
	f := newFakeRenderer()
	s, err := NewScene(f, testSceneOptions()...)
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, "sphere", s.VolumeName())
	assert.Equal(t, "grayscale", s.ColormapName())
	assert.Equal(t, FrameStateIdle, s.State())

	assert.Equal(t, 1, f.count("register_pipeline"))
	assert.Equal(t, 1, f.count("init_mesh"))
	assert.Equal(t, 1, f.count("init_bind_group"))
	assert.Equal(t, 1, f.count("init_texture3d"))
	assert.Equal(t, 1, f.count("init_texture2d"))
	assert.Equal(t, 1, f.count("init_sampler"))
}

func TestStepFrameOrdering(t *testing.T) {
	f := newFakeRenderer()
	s, err := NewScene(f, testSceneOptions()...)
	require.NoError(t, err)
	defer s.Release()

	f.reset()
	require.NoError(t, s.Step())

	// Uniform upload strictly precedes frame encoding; present is last.
	assert.Equal(t, []string{
		"write_buffers",
		"begin_frame",
		"draw:" + VolumePipelineKey,
		"end_frame",
		"present",
	}, f.events)
	assert.Equal(t, FrameStateIdle, s.State())
}

func TestStepSkipsWhileHidden(t *testing.T) {
	f := newFakeRenderer()
	s, err := NewScene(f, testSceneOptions()...)
	require.NoError(t, err)
	defer s.Release()

	assert.True(t, s.Visible())
	s.SetVisible(false)
	assert.False(t, s.Visible())

	f.reset()
	require.NoError(t, s.Step())
	assert.Empty(t, f.events)
	assert.Equal(t, FrameStateIdle, s.State())

	// Restoring visibility resumes rendering.
	s.SetVisible(true)
	assert.True(t, s.Visible())
	require.NoError(t, s.Step())
	assert.Equal(t, 1, f.count("present"))
}

func TestSelectionChangesCoalesceIntoOneRebuild(t *testing.T) {
	f := newFakeRenderer()
	s, err := NewScene(f, testSceneOptions()...)
	require.NoError(t, err)
	defer s.Release()

	s.SelectVolume("blob")
	s.SelectColormap("fire")
	f.reset()
	require.NoError(t, s.Step())

	assert.Equal(t, 1, f.count("init_bind_group"))
	assert.Equal(t, "blob", s.VolumeName())
	assert.Equal(t, "fire", s.ColormapName())

	// With nothing pending, the next frame rebuilds nothing.
	f.reset()
	require.NoError(t, s.Step())
	assert.Zero(t, f.count("init_bind_group"))
}

func TestUnknownSelectionKeepsLastGoodSet(t *testing.T) {
	f := newFakeRenderer()
	s, err := NewScene(f, testSceneOptions()...)
	require.NoError(t, err)
	defer s.Release()

	s.SelectVolume("does-not-exist")
	f.reset()
	require.NoError(t, s.Step())

	// The bad selection is rejected before any GPU resource is touched and
	// the frame still renders with the previous set.
	assert.Zero(t, f.count("init_texture3d"))
	assert.Equal(t, 1, f.count("present"))
	assert.Equal(t, "sphere", s.VolumeName())

	// The rejection resets the pending selection, so the next frame does
	// not retry the rebuild.
	f.reset()
	require.NoError(t, s.Step())
	assert.Zero(t, f.count("init_texture3d"))
}

func TestResourceFailureIsFatal(t *testing.T) {
	f := newFakeRenderer()
	s, err := NewScene(f, testSceneOptions()...)
	require.NoError(t, err)
	defer s.Release()

	f.bindGroupErr = &common.ResourceError{Op: "create bind group", Err: errors.New("device lost")}
	s.SelectVolume("blob")

	err = s.Step()
	var resErr *common.ResourceError
	require.ErrorAs(t, err, &resErr)

	// The last-good selection stays bound.
	assert.Equal(t, "sphere", s.VolumeName())
}

func TestBeginFrameFailureSkipsFrame(t *testing.T) {
	f := newFakeRenderer()
	s, err := NewScene(f, testSceneOptions()...)
	require.NoError(t, err)
	defer s.Release()

	f.beginErr = errors.New("surface outdated")
	f.reset()
	require.NoError(t, s.Step())

	assert.Zero(t, f.count("draw:"+VolumePipelineKey))
	assert.Zero(t, f.count("end_frame"))
	assert.Zero(t, f.count("present"))
}

// Swapping the transfer function must not disturb the camera: the view
// uniform produced after the swap is identical to the one before it.
func TestColormapSwapLeavesCameraUntouched(t *testing.T) {
	f := newFakeRenderer()
	s, err := NewScene(f, testSceneOptions()...)
	require.NoError(t, err)
	defer s.Release()

	before := s.Camera().Snapshot()

	s.SelectColormap("fire")
	require.NoError(t, s.Step())

	after := s.Camera().Snapshot()
	assert.Equal(t, before.ProjView, after.ProjView)
	assert.Equal(t, before.Eye, after.Eye)
	assert.Equal(t, "fire", s.ColormapName())
	assert.Equal(t, "sphere", s.VolumeName())
}

func TestCycleWrapsSelections(t *testing.T) {
	f := newFakeRenderer()
	s, err := NewScene(f, testSceneOptions()...)
	require.NoError(t, err)
	defer s.Release()

	// sphere -> blob -> noise -> sphere
	s.CycleVolume()
	require.NoError(t, s.Step())
	assert.Equal(t, "blob", s.VolumeName())

	s.CycleVolume()
	s.CycleVolume()
	require.NoError(t, s.Step())
	assert.Equal(t, "sphere", s.VolumeName())

	s.CycleColormap()
	require.NoError(t, s.Step())
	assert.Equal(t, "viridis", s.ColormapName())
}
