package setups

// ResourcePlan specifies wiring and operating parameters chosen by a setup.
// Platform factories consume this plan to configure the board.
type ResourcePlan struct {
	Name    string
	I2C     I2CPlan
	Display DisplayPlan
	UART    UARTPlan
	ADC     ADCPlan
	PWM     PWMPlan
	GPIO    GPIOPlan
	WS2812  WS2812Plan
}

type I2CPlan struct {
	ID  string // "i2c0" or "i2c1"
	SDA int    // GPIO number
	SCL int    // GPIO number
	Hz  uint32 // bus frequency
}

// DisplayPlan describes the SSD1306 panel on the I2C bus.
type DisplayPlan struct {
	Addr   uint16
	Width  int16
	Height int16
}

type UARTPlan struct {
	ID   string // "uart0" or "uart1"
	TX   int
	RX   int
	Baud uint32
}

// ADCPlan holds the GPIO numbers of the joystick axes (GP26..GP29 only).
type ADCPlan struct {
	X int
	Y int
}

// PWMPlan holds the dimmable LED pins. Both share FreqHz, which matters
// when they sit on the same slice.
type PWMPlan struct {
	Red    int
	Blue   int
	FreqHz uint64
	Top    uint16
}

type GPIOPlan struct {
	Green     int
	ButtonA   int
	JoyButton int
}

// WS2812Plan is the addressable LED matrix. Pixels == 0 means absent.
type WS2812Plan struct {
	Pin    int
	Pixels int
}

// Default is the plan used by hal.Open.
func Default() ResourcePlan { return BitDogLab }
