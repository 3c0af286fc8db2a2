//go:build rp2040

package platform

import (
	"io"
	"machine"

	"github.com/jangala-dev/tinygo-uartx/uartx"

	"joycursor-go/errcode"
	"joycursor-go/services/hal/internal/platform/setups"
)

// OpenConsole configures the plan's UART as the log sink.
func OpenConsole(p setups.UARTPlan) (io.Writer, error) {
	var hw *uartx.UART
	switch p.ID {
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "console", Msg: p.ID}
	}
	err := hw.Configure(uartx.UARTConfig{
		BaudRate: p.Baud,
		TX:       machine.Pin(p.TX),
		RX:       machine.Pin(p.RX),
	})
	if err != nil {
		return nil, errcode.Wrap(errcode.Error, "console", err)
	}
	return hw, nil
}
