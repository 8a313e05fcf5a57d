package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a functional option used to configure a Shader during construction.
type ShaderBuilderOption func(*shader)

// WithEntryPoint sets the entry point function name explicitly, bypassing the
// source scan.
//
// Parameters:
//   - entryPoint: the function name to use as the entry point
//
// Returns:
//   - ShaderBuilderOption: a function that sets the entry point for this shader
func WithEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		s.entryPoint = entryPoint
	}
}

// WithBindGroupLayoutDescriptor declares the bind group layout for a group index.
//
// Parameters:
//   - group: the bind group index
//   - descriptor: the layout descriptor for the group
//
// Returns:
//   - ShaderBuilderOption: a function that sets the layout descriptor for this shader
func WithBindGroupLayoutDescriptor(group int, descriptor wgpu.BindGroupLayoutDescriptor) ShaderBuilderOption {
	return func(s *shader) {
		s.bindGroupLayoutDescriptors[group] = descriptor
	}
}

// WithVertexLayouts sets the vertex buffer layouts for a vertex shader.
//
// Parameters:
//   - layouts: the vertex buffer layouts to set
//
// Returns:
//   - ShaderBuilderOption: a function that sets the vertex layouts for this shader
func WithVertexLayouts(layouts []wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts = layouts
	}
}
