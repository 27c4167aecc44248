package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconConfig   = "\ue615" // config
	IconKeyboard = "\uf11c" // keyboard
	IconMouse    = "\uf8cc" // mouse
	IconCursor   = "\uf054" // chevron-right
	IconSearch   = "\uf002" // magnifier
	IconRefresh  = "\uf021" // refresh
)
