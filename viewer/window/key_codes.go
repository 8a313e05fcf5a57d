package window

// Key codes for the keys the viewer binds, matching GLFW's US-layout key
// tokens so callbacks can compare without importing the platform package.
const (
	KeySpace      uint32 = 32
	KeyC          uint32 = 67
	KeyV          uint32 = 86
	KeyLeftShift  uint32 = 340
	KeyRightShift uint32 = 344
)
