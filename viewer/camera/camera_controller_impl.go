package camera

import (
	"sync"

	"github.com/chewxy/math32"
)

// cameraControllerImpl is the single implementation of CameraController.
// Orbit methods modify spherical coordinates and recompute position; Pan
// translates both position and target along local camera axes, preserving
// the orbit relationship.
type cameraControllerImpl struct {
	mu *sync.Mutex

	// Camera position (computed from target + spherical coords)
	position [3]float32
	target   [3]float32

	// Spherical coordinates (offset from target)
	radius    float32
	azimuth   float32 // Horizontal angle around Y axis
	elevation float32 // Vertical angle from horizontal plane

	// Orbit constraints
	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	// Input speed settings
	mouseSensitivity float32
	zoomSpeed        float32
	panSpeed         float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new orbit camera controller with defaults
// suited to framing a unit volume cube centered on the origin.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:     &sync.Mutex{},
		target: [3]float32{0, 0, 0},

		radius:    2.0,
		azimuth:   0.0,
		elevation: 0.0,

		minRadius:    0.75,
		maxRadius:    10.0,
		minElevation: -(math32.Pi/2 - 0.05),
		maxElevation: math32.Pi/2 - 0.05,

		mouseSensitivity: 0.005,
		zoomSpeed:        0.1,
		panSpeed:         0.002,
	}

	for _, option := range options {
		option(cc)
	}

	cc.updatePosition()
	return cc
}

// --- internal helpers ---

// updatePosition recomputes the camera position from spherical coordinates.
// Must be called whenever radius, azimuth, elevation, or target changes.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updatePosition() {
	cosElev := math32.Cos(cc.elevation)
	sinElev := math32.Sin(cc.elevation)
	cosAzim := math32.Cos(cc.azimuth)
	sinAzim := math32.Sin(cc.azimuth)

	cc.position[0] = cc.target[0] + cc.radius*cosElev*sinAzim
	cc.position[1] = cc.target[1] + cc.radius*sinElev
	cc.position[2] = cc.target[2] + cc.radius*cosElev*cosAzim
}

// localAxes computes the camera's local coordinate axes consistent with the LookAt matrix.
// Returns right (rx,ry,rz) and up (ux,uy,uz) vectors.
// If position and target coincide, all returned components are zero.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) localAxes() (rx, ry, rz, ux, uy, uz float32) {
	// backward = normalize(position - target), matching LookAt's z-axis
	bx := cc.position[0] - cc.target[0]
	by := cc.position[1] - cc.target[1]
	bz := cc.position[2] - cc.target[2]
	bLen := math32.Sqrt(bx*bx + by*by + bz*bz)
	if bLen < 1e-8 {
		return
	}
	bx /= bLen
	by /= bLen
	bz /= bLen

	// right = normalize(cross(worldUp, backward)) where worldUp = (0, 1, 0)
	rx = bz
	rz = -bx
	rLen := math32.Sqrt(rx*rx + rz*rz)
	if rLen < 1e-8 {
		return
	}
	rx /= rLen
	rz /= rLen

	// up = cross(backward, right), matching LookAt's y-axis
	ux = by*rz - bz*ry
	uy = bz*rx - bx*rz
	uz = bx*ry - by*rx
	return
}

// clampElevation keeps the elevation inside the configured bounds.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) clampElevation() {
	if cc.elevation < cc.minElevation {
		cc.elevation = cc.minElevation
	}
	if cc.elevation > cc.maxElevation {
		cc.elevation = cc.maxElevation
	}
}

// clampRadius keeps the radius inside the configured bounds.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) clampRadius() {
	if cc.radius < cc.minRadius {
		cc.radius = cc.minRadius
	}
	if cc.radius > cc.maxRadius {
		cc.radius = cc.maxRadius
	}
}

// --- CameraController methods ---

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *cameraControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target[0] = x
	cc.target[1] = y
	cc.target[2] = z
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Rotate(prevX, prevY, curX, curY float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	// Dragging right swings the camera left around the target, keeping the
	// volume "attached" to the pointer. Dragging up tilts the view down.
	cc.azimuth -= (curX - prevX) * cc.mouseSensitivity
	cc.elevation += (curY - prevY) * cc.mouseSensitivity
	cc.clampElevation()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Pan(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	rx, _, rz, ux, uy, uz := cc.localAxes()
	// Scale pan distance with radius so screen-space motion stays consistent
	// at any zoom level.
	scale := cc.panSpeed * cc.radius

	offsetRX := -dx * scale * rx
	offsetRZ := -dx * scale * rz
	offsetUX := dy * scale * ux
	offsetUY := dy * scale * uy
	offsetUZ := dy * scale * uz

	cc.target[0] += offsetRX + offsetUX
	cc.target[1] += offsetUY
	cc.target[2] += offsetRZ + offsetUZ
	cc.position[0] += offsetRX + offsetUX
	cc.position[1] += offsetUY
	cc.position[2] += offsetRZ + offsetUZ
}

func (cc *cameraControllerImpl) Zoom(amount float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius -= amount * cc.zoomSpeed
	cc.clampRadius()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = radius
	cc.clampRadius()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *cameraControllerImpl) SetAzimuth(azimuth float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth = azimuth
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *cameraControllerImpl) SetElevation(elevation float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = elevation
	cc.clampElevation()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}

func (cc *cameraControllerImpl) ZoomSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.zoomSpeed
}

func (cc *cameraControllerImpl) PanSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.panSpeed
}
