// services/hal/types.go
package hal

import "joycursor-go/services/hal/internal/halcore"

// Re-exported so callers outside services/hal can name the board's parts.
type (
	Board      = halcore.Board
	GPIOPin    = halcore.GPIOPin
	IRQPin     = halcore.IRQPin
	ADCChannel = halcore.ADCChannel
	PWMChannel = halcore.PWMChannel
	PixelStrip = halcore.PixelStrip
	Pull       = halcore.Pull
	Edge       = halcore.Edge
)

const (
	PullNone = halcore.PullNone
	PullUp   = halcore.PullUp
	PullDown = halcore.PullDown

	EdgeNone    = halcore.EdgeNone
	EdgeRising  = halcore.EdgeRising
	EdgeFalling = halcore.EdgeFalling
	EdgeBoth    = halcore.EdgeBoth
)
