// services/hal/hal.go
package hal

import (
	"io"

	"joycursor-go/services/hal/internal/platform"
	"joycursor-go/services/hal/internal/platform/setups"
)

// Open configures the default board plan. On RP2 targets this touches the
// hardware; on host builds it returns in-memory fakes.
func Open() (*Board, error) { return platform.Open(setups.Default()) }

// OpenConsole returns the log sink named by the default plan.
func OpenConsole() (io.Writer, error) { return platform.OpenConsole(setups.Default().UART) }

// PWMSettings returns the dimmable LED frequency and logical top of the
// default plan.
func PWMSettings() (freqHz uint64, top uint16) {
	p := setups.Default().PWM
	return p.FreqHz, p.Top
}
