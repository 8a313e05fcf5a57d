package camera

// CameraController defines the interface for the orbit camera control system.
// Controllers own positional state (position, target, spherical coordinates).
// Camera reads from the controller and computes view/projection matrices.
// All mutation is driven by discrete input events and applies immediately and
// synchronously; there is no queued or batched motion.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget sets the look-at/pivot point and recomputes position from spherical coordinates.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Rotate orbits the camera around the target from a pointer drag. The
	// previous and current pointer positions are in window pixel coordinates;
	// the horizontal delta adjusts azimuth and the vertical delta adjusts
	// elevation, both scaled by the mouse sensitivity.
	//
	// Parameters:
	//   - prevX, prevY: pointer position at the previous event
	//   - curX, curY: pointer position at the current event
	Rotate(prevX, prevY, curX, curY float32)

	// Pan translates both the camera position and target along the camera's
	// local right and up axes, preserving the orbit relationship.
	//
	// Parameters:
	//   - dx: pan amount along the local right axis, scaled by PanSpeed
	//   - dy: pan amount along the local up axis, scaled by PanSpeed
	Pan(dx, dy float32)

	// Zoom adjusts the camera's distance by modifying orbit radius.
	// Positive amount zooms in (closer to target).
	//
	// Parameters:
	//   - amount: zoom amount scaled by ZoomSpeed
	Zoom(amount float32)

	// Radius returns the current orbit radius (distance from target).
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// SetRadius sets the orbit radius directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// Azimuth returns the current horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// SetAzimuth sets the horizontal angle directly and recomputes position.
	//
	// Parameters:
	//   - azimuth: new horizontal angle in radians
	SetAzimuth(azimuth float32)

	// Elevation returns the current vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// SetElevation sets the vertical angle directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - elevation: new vertical angle in radians
	SetElevation(elevation float32)

	// MouseSensitivity returns the pointer drag sensitivity multiplier.
	//
	// Returns:
	//   - float32: multiplier for pointer movement
	MouseSensitivity() float32

	// ZoomSpeed returns the zoom speed multiplier.
	//
	// Returns:
	//   - float32: multiplier for zoom input
	ZoomSpeed() float32

	// PanSpeed returns the pan speed multiplier.
	//
	// Returns:
	//   - float32: multiplier for pan input
	PanSpeed() float32
}
