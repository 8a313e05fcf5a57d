package common

import "fmt"

// CapabilityError indicates that no compatible graphics adapter or device could
// be acquired. It is terminal: the viewer presents an "unsupported" notice and
// never starts rendering.
type CapabilityError struct {
	// Reason describes the missing capability (adapter, device, surface format).
	Reason string
	// Err is the underlying device-boundary error, if any.
	Err error
}

func (e *CapabilityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("graphics capability unavailable: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("graphics capability unavailable: %s", e.Reason)
}

func (e *CapabilityError) Unwrap() error { return e.Err }

// ShaderCompileError indicates that a WGSL program failed to compile.
// It is terminal: the pipeline is never created and rendering never starts.
type ShaderCompileError struct {
	// Key identifies the shader that failed.
	Key string
	// Err carries the compiler diagnostics.
	Err error
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("shader %q failed to compile: %v", e.Key, e.Err)
}

func (e *ShaderCompileError) Unwrap() error { return e.Err }

// AssetError indicates a named volume dataset or colormap was not found or
// could not be decoded. Recoverable: the previously bound selection stays live.
type AssetError struct {
	// Kind is the asset category ("volume" or "colormap").
	Kind string
	// Name is the requested asset identifier.
	Name string
	// Err is the underlying lookup or decode error, if any.
	Err error
}

func (e *AssetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s asset %q: %v", e.Kind, e.Name, e.Err)
	}
	return fmt.Sprintf("%s asset %q not found", e.Kind, e.Name)
}

func (e *AssetError) Unwrap() error { return e.Err }

// ResourceError indicates device-side buffer/texture/pipeline creation failed,
// including device loss. Fatal to the running frame loop; no automatic retry.
type ResourceError struct {
	// Op names the resource operation that failed (e.g. "create volume texture").
	Op string
	// Err is the underlying device error.
	Err error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("gpu resource failure during %s: %v", e.Op, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }
