package setups

// BitDogLab wiring: SSD1306 on I2C1, analog joystick on ADC0/ADC1,
// RGB LED with red and blue on PWM slice 6, 5x5 WS2812 matrix.
var BitDogLab = ResourcePlan{
	Name: "bitdoglab",
	I2C:  I2CPlan{ID: "i2c1", SDA: 14, SCL: 15, Hz: 400_000},
	Display: DisplayPlan{
		Addr:   0x3C,
		Width:  128,
		Height: 64,
	},
	UART: UARTPlan{ID: "uart0", TX: 0, RX: 1, Baud: 115_200},
	ADC:  ADCPlan{X: 26, Y: 27},
	PWM: PWMPlan{
		Red:  13,
		Blue: 12,
		// 125 MHz / 65536: counter wraps at 65535 with divider 1.
		FreqHz: 1907,
		Top:    65535,
	},
	GPIO:   GPIOPlan{Green: 11, ButtonA: 5, JoyButton: 22},
	WS2812: WS2812Plan{Pin: 7, Pixels: 25},
}
