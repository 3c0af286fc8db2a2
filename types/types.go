package types

// ---- Border style ----

// BorderStyle selects the frame pattern drawn around the display edge.
type BorderStyle uint8

const (
	BorderNone BorderStyle = iota
	BorderSolid
	BorderDotted
	BorderDouble

	borderStyles = 4
)

// Valid reports whether s is one of the defined styles.
func (s BorderStyle) Valid() bool { return s < borderStyles }

// Next returns the style after s, wrapping DOUBLE back to NONE.
// Out-of-range values restart the cycle at NONE.
func (s BorderStyle) Next() BorderStyle {
	if !s.Valid() {
		return BorderNone
	}
	return (s + 1) % borderStyles
}

func (s BorderStyle) String() string {
	switch s {
	case BorderSolid:
		return "solid"
	case BorderDotted:
		return "dotted"
	case BorderDouble:
		return "double"
	default:
		return "none"
	}
}

// ---- Toggle state (snapshot) ----

// Toggles is a point-in-time copy of the button-driven state.
type Toggles struct {
	PWMEnabled bool
	Border     BorderStyle
	GreenOn    bool
}

// ---- Per-iteration values ----

// Cursor is the top-left corner of the cursor square.
// X indexes display rows (bounded by the display height) and Y indexes
// columns (bounded by the display width); the board mounts the joystick
// rotated relative to the panel.
type Cursor struct {
	X int
	Y int
}

// DutyPair holds the 16-bit PWM levels for the red and blue channels.
type DutyPair struct {
	Red  uint16
	Blue uint16
}
