package config

// Window configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 1280
	WindowHeight = 720

	WindowTitle = "Hexmap"
)

// GetWindowSize returns the recommended window size (the map itself fills whatever the window ends up being)
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
