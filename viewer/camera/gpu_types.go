package camera

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// ViewParams is the GPU-aligned view-parameter record consumed by the ray
// casting shader each frame. Matches the WGSL ViewParams struct layout
// exactly: a 4x4 projection-view matrix followed by the homogeneous-padded
// eye position. Size: 80 bytes (20 float32, std430 / WGSL aligned).
type ViewParams struct {
	ProjView [16]float32 // offset  0: combined projection-view matrix (mat4x4<f32>)
	Eye      [3]float32  // offset 64: world-space eye position (vec3<f32>)
	_pad     float32     // offset 76: padding to 80 bytes
}

// Size returns the size of the ViewParams record in bytes.
//
// Returns:
//   - int: the record size in bytes (80)
func (v *ViewParams) Size() int {
	return int(unsafe.Sizeof(*v))
}

// Marshal serializes the ViewParams record into a byte buffer suitable for GPU
// upload. The record is assembled completely into a fresh buffer so the bytes
// handed to the queue never reflect a partially written state.
//
// Returns:
//   - []byte: the serialized byte buffer
func (v *ViewParams) Marshal() []byte {
	buf := make([]byte, v.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v.ProjView[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(v.Eye[i]))
	}
	binary.LittleEndian.PutUint32(buf[76:], 0) // _pad
	return buf
}
