//go:build rp2350

package platform

import (
	"io"
	"machine"

	"joycursor-go/errcode"
	"joycursor-go/services/hal/internal/platform/setups"
)

// OpenConsole configures the plan's UART as the log sink. uartx targets
// RP2040 only, so RP2350 uses the machine UART.
func OpenConsole(p setups.UARTPlan) (io.Writer, error) {
	var hw *machine.UART
	switch p.ID {
	case "uart0":
		hw = machine.UART0
	case "uart1":
		hw = machine.UART1
	default:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "console", Msg: p.ID}
	}
	err := hw.Configure(machine.UARTConfig{
		BaudRate: p.Baud,
		TX:       machine.Pin(p.TX),
		RX:       machine.Pin(p.RX),
	})
	if err != nil {
		return nil, errcode.Wrap(errcode.Error, "console", err)
	}
	return hw, nil
}
