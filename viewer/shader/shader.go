package shader

import (
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies the pipeline stage a shader targets.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

// shader is the implementation of the Shader interface.
// It holds the persistent shader data required for pipeline creation.
type shader struct {
	key                        string
	source                     string
	shaderType                 ShaderType
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
	vertexLayouts              []wgpu.VertexBufferLayout
	entryPoint                 string
}

// Shader defines the interface for a WGSL shader stage. It exposes the shader's
// unique key, source code, entry point, bind group layout descriptors, and
// vertex buffer layouts needed for pipeline creation and resource wiring.
//
// Bind group layouts are declared explicitly by the caller rather than parsed
// out of the WGSL source; the viewer uses a single fixed binding layout so the
// descriptors are written once alongside the shader source they describe.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Type returns the pipeline stage this shader targets.
	//
	// Returns:
	//   - ShaderType: the shader stage (vertex or fragment)
	Type() ShaderType

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// EntryPoint returns the entry point function name for this shader.
	//
	// Returns:
	//   - string: the entry point name (e.g. "vs_main")
	EntryPoint() string

	// BindGroupLayoutDescriptors retrieves the declared bind group layout descriptors.
	// These are CPU-side descriptors used by the renderer to create the actual
	// wgpu.BindGroupLayout GPU objects.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// VertexLayouts retrieves the vertex buffer layouts associated with this shader.
	// Only meaningful for vertex shaders; nil otherwise.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: the vertex buffer layouts
	VertexLayouts() []wgpu.VertexBufferLayout
}

var _ Shader = &shader{}

// NewShader creates a new Shader from WGSL source. If no entry point option is
// supplied, the source is scanned for the first function following the stage
// attribute (@vertex or @fragment).
//
// Parameters:
//   - key: the unique identifier for this shader
//   - shaderType: the pipeline stage this shader targets
//   - source: the WGSL source code
//   - opts: a variadic list of ShaderBuilderOption functions to configure the shader
//
// Returns:
//   - Shader: the newly created shader
func NewShader(key string, shaderType ShaderType, source string, opts ...ShaderBuilderOption) Shader {
	s := &shader{
		key:                        key,
		source:                     source,
		shaderType:                 shaderType,
		bindGroupLayoutDescriptors: make(map[int]wgpu.BindGroupLayoutDescriptor),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.entryPoint == "" {
		s.entryPoint = scanEntryPoint(source, shaderType)
	}
	return s
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Type() ShaderType {
	return s.shaderType
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}

func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

// scanEntryPoint finds the name of the first function declared after the stage
// attribute matching the given shader type. Returns an empty string if the
// source contains no matching entry point.
//
// Parameters:
//   - source: the WGSL source code to scan
//   - shaderType: the stage attribute to look for
//
// Returns:
//   - string: the entry point function name, or "" if not found
func scanEntryPoint(source string, shaderType ShaderType) string {
	attr := "@vertex"
	if shaderType == ShaderTypeFragment {
		attr = "@fragment"
	}

	idx := strings.Index(source, attr)
	if idx < 0 {
		return ""
	}

	rest := source[idx+len(attr):]
	fnIdx := strings.Index(rest, "fn ")
	if fnIdx < 0 {
		return ""
	}

	rest = rest[fnIdx+len("fn "):]
	end := strings.IndexAny(rest, "( \t\n")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}
