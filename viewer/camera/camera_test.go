package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerDefaultPosition(t *testing.T) {
	ctrl := NewCameraController()

	x, y, z := ctrl.Position()
	assert.InDelta(t, 0.0, x, 1e-5)
	assert.InDelta(t, 0.0, y, 1e-5)
	assert.InDelta(t, 2.0, z, 1e-5)

	tx, ty, tz := ctrl.Target()
	assert.Zero(t, tx)
	assert.Zero(t, ty)
	assert.Zero(t, tz)
}

func TestControllerOrbitKeepsRadius(t *testing.T) {
	ctrl := NewCameraController()
	radius := ctrl.Radius()

	ctrl.Rotate(0, 0, 137, 42)
	ctrl.Rotate(137, 42, 11, 230)

	x, y, z := ctrl.Position()
	dist := math32.Sqrt(x*x + y*y + z*z)
	assert.InDelta(t, float64(radius), float64(dist), 1e-4)
}

func TestControllerElevationClamped(t *testing.T) {
	ctrl := NewCameraController()

	// Drag far past the pole; the elevation must stop short of it so the
	// view direction never collinear with the up vector.
	ctrl.Rotate(0, 0, 0, 100000)
	assert.Less(t, ctrl.Elevation(), float32(math32.Pi/2))

	ctrl.Rotate(0, 100000, 0, 0)
	assert.Greater(t, ctrl.Elevation(), float32(-math32.Pi/2))
}

func TestControllerZoomClamped(t *testing.T) {
	ctrl := NewCameraController()

	ctrl.Zoom(100000)
	minRadius := ctrl.Radius()
	assert.Greater(t, minRadius, float32(0))

	ctrl.Zoom(-100000)
	maxRadius := ctrl.Radius()
	assert.Greater(t, maxRadius, minRadius)

	// Zooming further out changes nothing once clamped.
	ctrl.Zoom(-1)
	assert.Equal(t, maxRadius, ctrl.Radius())
}

func TestControllerPanShiftsTargetAndPosition(t *testing.T) {
	ctrl := NewCameraController()
	px, py, pz := ctrl.Position()

	ctrl.Pan(50, 0)

	tx, ty, tz := ctrl.Target()
	assert.NotEqual(t, float32(0), tx)
	assert.Zero(t, ty)
	assert.Zero(t, tz)

	// The position shifts by the same offset, keeping the view direction.
	nx, ny, nz := ctrl.Position()
	assert.InDelta(t, float64(nx-px), float64(tx), 1e-5)
	assert.InDelta(t, float64(ny-py), float64(ty), 1e-5)
	assert.InDelta(t, float64(nz-pz), float64(tz), 1e-5)
}

func TestViewParamsSize(t *testing.T) {
	var vp ViewParams
	// 16 matrix floats, 3 eye floats, 1 pad float.
	assert.Equal(t, 80, vp.Size())
}

func TestViewParamsMarshalLayout(t *testing.T) {
	vp := ViewParams{}
	for i := range vp.ProjView {
		vp.ProjView[i] = float32(i)
	}
	vp.Eye = [3]float32{10, 20, 30}

	data := vp.Marshal()
	require.Len(t, data, 80)

	for i := range 16 {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		assert.Equal(t, float32(i), got)
	}
	assert.Equal(t, float32(10), math.Float32frombits(binary.LittleEndian.Uint32(data[64:])))
	assert.Equal(t, float32(20), math.Float32frombits(binary.LittleEndian.Uint32(data[68:])))
	assert.Equal(t, float32(30), math.Float32frombits(binary.LittleEndian.Uint32(data[72:])))
}

func TestSnapshotMatchesController(t *testing.T) {
	ctrl := NewCameraController()
	cam := NewCamera(WithController(ctrl))

	vp := cam.Snapshot()
	px, py, pz := ctrl.Position()
	assert.Equal(t, [3]float32{px, py, pz}, vp.Eye)

	// Moving the camera is reflected in the next snapshot.
	ctrl.Zoom(5)
	vp2 := cam.Snapshot()
	_, _, pz2 := ctrl.Position()
	assert.Equal(t, pz2, vp2.Eye[2])
	assert.NotEqual(t, vp.Eye, vp2.Eye)
	assert.NotEqual(t, vp.ProjView, vp2.ProjView)
}

func TestSnapshotWithoutController(t *testing.T) {
	cam := NewCamera()
	vp := cam.Snapshot()
	assert.Equal(t, [3]float32{0, 0, 0}, vp.Eye)
}
