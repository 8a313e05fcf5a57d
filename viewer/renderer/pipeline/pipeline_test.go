package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/volcast/viewer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineDefaults(t *testing.T) {
	p := NewPipeline("defaults")

	assert.Equal(t, "defaults", p.PipelineKey())
	assert.False(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.IndexFormatUint16, p.IndexFormat())
	assert.Nil(t, p.Pipeline())
}

func TestPipelineOptions(t *testing.T) {
	vs := shader.VolumeVertexShader()
	fs := shader.VolumeFragmentShader()

	p := NewPipeline("volume",
		WithVertexShader(vs),
		WithFragmentShader(fs),
		WithTopology(wgpu.PrimitiveTopologyTriangleStrip),
		WithCullMode(wgpu.CullModeFront),
		WithBlendEnabled(true),
	)

	assert.Same(t, vs, p.Shader(shader.ShaderTypeVertex))
	assert.Same(t, fs, p.Shader(shader.ShaderTypeFragment))
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleStrip, p.Topology())
	assert.Equal(t, wgpu.CullModeFront, p.CullMode())
	assert.True(t, p.BlendEnabled())
}

// The default blend state composites premultiplied output: source factor
// one, destination one-minus-source-alpha on both channels.
func TestPipelinePremultipliedBlendState(t *testing.T) {
	p := NewPipeline("blend", WithBlendEnabled(true))

	bs := p.BlendState()
	require.NotNil(t, bs)
	assert.Equal(t, wgpu.BlendFactorOne, bs.Color.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorOneMinusSrcAlpha, bs.Color.DstFactor)
	assert.Equal(t, wgpu.BlendFactorOne, bs.Alpha.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorOneMinusSrcAlpha, bs.Alpha.DstFactor)
}
